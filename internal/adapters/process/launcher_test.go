//go:build unix

package process

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trailhook/internal/ports"
)

func TestExecLauncher_MergesStdoutAndStderr(t *testing.T) {
	p, err := NewExecLauncher().Launch(context.Background(), ports.LaunchSpec{
		Name: "sh",
		Args: []string{"-c", "echo out; echo err >&2; exit 3"},
	})
	require.NoError(t, err)
	defer p.Close()

	output, err := io.ReadAll(p.Output())
	require.NoError(t, err)

	code, err := p.Wait()
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Contains(t, string(output), "out\n")
	assert.Contains(t, string(output), "err\n")
}

func TestExecLauncher_PassesEnvironment(t *testing.T) {
	p, err := NewExecLauncher().Launch(context.Background(), ports.LaunchSpec{
		Name: "sh",
		Args: []string{"-c", "printf %s \"$TRAILHOOK_SESSION_ID\""},
		Env:  []string{"TRAILHOOK_SESSION_ID=abc"},
	})
	require.NoError(t, err)
	defer p.Close()

	output, err := io.ReadAll(p.Output())
	require.NoError(t, err)
	assert.Equal(t, "abc", string(output))
}

func TestExecLauncher_StopTerminatesProcessGroup(t *testing.T) {
	p, err := NewExecLauncher().Launch(context.Background(), ports.LaunchSpec{
		Name: "sh",
		Args: []string{"-c", "sleep 30 & sleep 30"},
	})
	require.NoError(t, err)
	defer p.Close()

	start := time.Now()
	require.NoError(t, p.Stop(2*time.Second))

	code, err := p.Wait()
	require.NoError(t, err)
	assert.Equal(t, 128+15, code)

	// The backgrounded sleep was in the same group, so the pipe reaches EOF
	_, err = io.ReadAll(p.Output())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestExecLauncher_StopAfterExitIsNoop(t *testing.T) {
	p, err := NewExecLauncher().Launch(context.Background(), ports.LaunchSpec{Name: "true"})
	require.NoError(t, err)
	defer p.Close()

	_, err = p.Wait()
	require.NoError(t, err)
	assert.NoError(t, p.Stop(time.Second))
}

func TestExecLauncher_PTY(t *testing.T) {
	p, err := NewExecLauncher().Launch(context.Background(), ports.LaunchSpec{
		Name: "sh",
		Args: []string{"-c", "echo hello"},
		PTY:  true,
	})
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	defer p.Close()

	output, err := io.ReadAll(p.Output())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(output), "hello"))

	code, err := p.Wait()
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestExecLauncher_PTYForwardsStdin(t *testing.T) {
	in, out := io.Pipe()
	go func() {
		_, _ = out.Write([]byte("hello\n"))
		_ = out.Close()
	}()

	p, err := NewExecLauncher().Launch(context.Background(), ports.LaunchSpec{
		Name:  "sh",
		Args:  []string{"-c", "read x; echo got=$x"},
		PTY:   true,
		Stdin: in,
	})
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	defer p.Close()

	done := make(chan string, 1)
	go func() {
		output, _ := io.ReadAll(p.Output())
		done <- string(output)
	}()

	select {
	case output := <-done:
		assert.Contains(t, output, "got=hello")
	case <-time.After(5 * time.Second):
		_ = p.Stop(time.Second)
		t.Fatal("child never received stdin")
	}

	code, err := p.Wait()
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestExecLauncher_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() context.Context
		spec ports.LaunchSpec
	}{
		{
			name: "empty command",
			ctx:  context.Background,
			spec: ports.LaunchSpec{},
		},
		{
			name: "missing binary",
			ctx:  context.Background,
			spec: ports.LaunchSpec{Name: "trailhook-definitely-missing-binary"},
		},
		{
			name: "cancelled context",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			spec: ports.LaunchSpec{Name: "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExecLauncher().Launch(tt.ctx(), tt.spec)
			assert.Error(t, err)
		})
	}
}
