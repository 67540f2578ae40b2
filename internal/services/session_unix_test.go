//go:build unix

package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trailhook/internal/adapters/process"
)

func TestSessionService_RunRecordsAndForwards(t *testing.T) {
	service, catalog := newTestSessionService(t, process.NewExecLauncher())
	var out bytes.Buffer
	meta := RecordingMeta{Model: "sonnet", Task: "run test", ToolVersion: "1.4.0"}

	result, err := service.Run(context.Background(), RunParams{
		Args:        []string{"sh", "-c", "echo hello\n" + eventScript(1, 2)},
		Meta:        meta,
		Passthrough: &out,
		Record:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.EventCount)
	assert.Equal(t, catalog.PathFor(meta), result.RecordingPath)
	assert.Equal(t, "claude-code", result.Session.Provider)
	assert.Contains(t, out.String(), "hello\n")
}

func TestSessionService_RunWithoutRecording(t *testing.T) {
	service, _ := newTestSessionService(t, process.NewExecLauncher())

	result, err := service.Run(context.Background(), RunParams{Args: []string{"true"}})

	require.NoError(t, err)
	assert.Empty(t, result.RecordingPath)
	assert.Equal(t, 0, result.Session.ExitCode)
}
