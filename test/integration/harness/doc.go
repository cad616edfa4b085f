// Package harness provides utilities for integration testing the gitsync CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - GITSYNC_HOME: Isolated per test (temp directory)
//   - GITSYNC_DEBUG: Disabled to reduce noise
package harness
