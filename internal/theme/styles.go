package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wolverin0/crystal-fork-sub001/internal/domain"
)

// Main styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	ProjectStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SessionStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Git diff styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)
)

// Version banner styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

var stateColors = map[domain.GitState]Color{
	domain.GitStateAhead:     ColorAhead,
	domain.GitStateBehind:    ColorBehind,
	domain.GitStateClean:     ColorClean,
	domain.GitStateConflict:  ColorConflict,
	domain.GitStateDiverged:  ColorDiverged,
	domain.GitStateModified:  ColorModified,
	domain.GitStateUnknown:   ColorUnknown,
	domain.GitStateUntracked: ColorUntracked,
}

var stateIcons = map[domain.GitState]string{
	domain.GitStateAhead:     "↑",
	domain.GitStateBehind:    "↓",
	domain.GitStateClean:     "✓",
	domain.GitStateConflict:  "✗",
	domain.GitStateDiverged:  "⇅",
	domain.GitStateModified:  "●",
	domain.GitStateUnknown:   "?",
	domain.GitStateUntracked: "+",
}

// StateStyle returns the style for a git state
func StateStyle(state domain.GitState) lipgloss.Style {
	color, ok := stateColors[state]
	if !ok {
		color = ColorUnknown
	}
	return lipgloss.NewStyle().Foreground(color)
}

// RenderState renders the icon and name of a primary state
func RenderState(state domain.GitState) string {
	icon, ok := stateIcons[state]
	if !ok {
		icon = stateIcons[domain.GitStateUnknown]
	}
	return StateStyle(state).Render(icon + " " + string(state))
}

// RenderLoading renders the placeholder for a status being computed
func RenderLoading() string {
	return MutedStyle.Render("… loading")
}

// RenderDetails renders counts and secondary states, e.g.
// "↑2 ↓1 +10 -3 (modified, untracked)". Empty for a clean tree.
func RenderDetails(s *domain.GitStatus) string {
	if s == nil {
		return ""
	}

	var parts []string
	if s.Ahead > 0 {
		parts = append(parts, StateStyle(domain.GitStateAhead).Render(fmt.Sprintf("↑%d", s.Ahead)))
	}
	if s.Behind > 0 {
		parts = append(parts, StateStyle(domain.GitStateBehind).Render(fmt.Sprintf("↓%d", s.Behind)))
	}
	if s.Additions > 0 {
		parts = append(parts, AdditionsStyle.Render(fmt.Sprintf("+%d", s.Additions)))
	}
	if s.Deletions > 0 {
		parts = append(parts, DeletionsStyle.Render(fmt.Sprintf("-%d", s.Deletions)))
	}
	if s.IsReadyToMerge {
		parts = append(parts, StateStyle(domain.GitStateAhead).Render("ready to merge"))
	}
	if len(s.SecondaryStates) > 0 {
		names := make([]string, len(s.SecondaryStates))
		for i, st := range s.SecondaryStates {
			names[i] = string(st)
		}
		parts = append(parts, MutedStyle.Render("("+strings.Join(names, ", ")+")"))
	}
	return strings.Join(parts, " ")
}
