// Package harness provides utilities for integration testing the trailhook CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - TRAILHOOK_HOME: Isolated per test (temp directory)
//   - TRAILHOOK_DEBUG: Disabled to reduce noise
//   - HOME: Isolated so global git configuration never leaks between tests
package harness
