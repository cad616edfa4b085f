package domain

// TransitionKind names a known state delta that can be applied without a full inspection
type TransitionKind int

const (
	// TransitionFromMain: the session branch was just rebased onto main
	TransitionFromMain TransitionKind = iota + 1
	// TransitionToMain: the session's commits were just pushed onto main
	TransitionToMain
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionFromMain:
		return "fromMain"
	case TransitionToMain:
		return "toMain"
	default:
		return "unknown"
	}
}
