package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StatusRow is one entry of `status --format json` and of the session
// transition commands.
type StatusRow struct {
	Session string `json:"session"`
	Status  *struct {
		Ahead                 int      `json:"ahead"`
		Behind                int      `json:"behind"`
		HasUncommittedChanges bool     `json:"hasUncommittedChanges"`
		HasUntrackedFiles     bool     `json:"hasUntrackedFiles"`
		IsReadyToMerge        bool     `json:"isReadyToMerge"`
		SecondaryStates       []string `json:"secondaryStates"`
		State                 string   `json:"state"`
		TotalCommits          int      `json:"totalCommits"`
	} `json:"status"`
}

// AssertSuccess verifies the command exited 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode,
		"Expected exit 0, got %d.\nStdout: %s\nStderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure verifies the command exited non-zero.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode,
		"Expected a non-zero exit.\nStdout: %s", result.Stdout)
}

// AssertStdoutContains verifies stdout contains expected.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "Stdout: %s", result.Stdout)
}

// AssertStdoutNotContains verifies stdout does not contain unexpected.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "Stdout: %s", result.Stdout)
}

// AssertStderrContains verifies stderr contains expected.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "Stderr: %s", result.Stderr)
}

// AssertValidJSON unmarshals stdout into target, failing the test when it
// is not JSON.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	err := json.Unmarshal([]byte(result.Stdout), target)
	require.NoError(tb, err, "Expected JSON.\nStdout: %s", result.Stdout)
}

// AssertJSONField verifies stdout is a JSON object whose key equals expected.
func AssertJSONField(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var object map[string]any
	AssertValidJSON(tb, result, &object)
	assert.Equal(tb, expected, object[key], "JSON key %q", key)
}

// AssertStatusRows verifies the command succeeded and decodes its status rows.
func AssertStatusRows(tb testing.TB, result CommandResult) []StatusRow {
	tb.Helper()
	AssertSuccess(tb, result)
	var rows []StatusRow
	AssertValidJSON(tb, result, &rows)
	return rows
}

// RowFor returns the row of session, failing the test when it is missing
// or has no status.
func RowFor(tb testing.TB, rows []StatusRow, session string) StatusRow {
	tb.Helper()
	for _, row := range rows {
		if row.Session == session {
			require.NotNil(tb, row.Status, "session %q has no status", session)
			return row
		}
	}
	require.Failf(tb, "missing session", "no row for %q in %+v", session, rows)
	return StatusRow{}
}
