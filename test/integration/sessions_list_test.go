package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolverin0/crystal-fork-sub001/test/integration/harness"
)

func TestSessionsListEmpty(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sessions", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Total: 0 sessions")

	json := harness.RunCommand(t, env, "sessions", "list", "--format", "json")
	harness.AssertSuccess(t, json)
	var sessions []map[string]any
	harness.AssertValidJSON(t, json, &sessions)
	assert.Empty(t, sessions)
}

func TestSessionsListTable(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	reg := newRegisteredWorktree(t, env, "login")

	result := harness.RunCommand(t, env, "sessions", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "login")
	harness.AssertStdoutContains(t, result, "app")
	harness.AssertStdoutContains(t, result, "active")
	harness.AssertStdoutContains(t, result, reg.worktree)
	harness.AssertStdoutContains(t, result, "Total: 1 sessions")
}

func TestSessionsListJSON(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	reg := newRegisteredWorktree(t, env, "login")

	result := harness.RunCommand(t, env, "sessions", "list", "--format", "json")
	harness.AssertSuccess(t, result)

	var sessions []map[string]any
	harness.AssertValidJSON(t, result, &sessions)
	require.Len(t, sessions, 1)
	assert.Equal(t, "login", sessions[0]["Name"])
	assert.Equal(t, reg.worktree, sessions[0]["WorktreePath"])
	assert.Equal(t, "active", sessions[0]["State"])
}
