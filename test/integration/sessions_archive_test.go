package integration_test

import (
	"testing"

	"github.com/wolverin0/crystal-fork-sub001/test/integration/harness"
)

func TestSessionsArchive(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "archive existing session with force",
			args:         []string{"sessions", "archive", "-f", "login"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Session 'login' archived")

				active := harness.RunCommand(t, env, "sessions", "list")
				harness.AssertSuccess(t, active)
				harness.AssertStdoutContains(t, active, "Total: 0 sessions")

				all := harness.RunCommand(t, env, "sessions", "list", "--all")
				harness.AssertSuccess(t, all)
				harness.AssertStdoutContains(t, all, "login")
			},
		},
		{
			name:         "archive non-existent session fails",
			args:         []string{"sessions", "archive", "-f", "non-existent"},
			wantExitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			newRegisteredWorktree(t, env, "login")

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestSessionsArchiveToggle(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	newRegisteredWorktree(t, env, "login")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "sessions", "archive", "-f", "login"))

	result := harness.RunCommand(t, env, "sessions", "archive", "login")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Session 'login' unarchived")

	list := harness.RunCommand(t, env, "sessions", "list")
	harness.AssertSuccess(t, list)
	harness.AssertStdoutContains(t, list, "Total: 1 sessions")
}

func TestSessionsState(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	newRegisteredWorktree(t, env, "login")

	result := harness.RunCommand(t, env, "sessions", "state", "login", "error")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Session 'login' is now error")

	status := harness.RunCommand(t, env, "status")
	harness.AssertSuccess(t, status)
	harness.AssertStdoutContains(t, status, "Total: 0 sessions")

	harness.AssertFailure(t, harness.RunCommand(t, env, "sessions", "state", "login", "bogus"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "sessions", "state", "login", "active"))

	status = harness.RunCommand(t, env, "status")
	harness.AssertSuccess(t, status)
	harness.AssertStdoutContains(t, status, "Total: 1 sessions")
}
