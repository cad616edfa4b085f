package integration_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wolverin0/crystal-fork-sub001/test/integration/harness"
)

func TestSessionsDel(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	reg := newRegisteredWorktree(t, env, "login")

	result := harness.RunCommand(t, env, "sessions", "del", "-f", "login")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Session 'login' deleted successfully")

	list := harness.RunCommand(t, env, "sessions", "list", "--all")
	harness.AssertSuccess(t, list)
	harness.AssertStdoutNotContains(t, list, "login")

	_, err := os.Stat(reg.worktree)
	assert.NoError(t, err, "worktree must be left on disk")
}

func TestSessionsDelNonExistent(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sessions", "del", "-f", "ghost")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "session not found")
}
