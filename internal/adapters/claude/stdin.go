// Package claude adapts the agent runtime's hook protocol: it decodes hook
// input documents and builds the settings that bind hooks to trailhook.
package claude

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/renato0307/trailhook/internal/domain"
)

// Defaults for reading hook input from stdin
const (
	DefaultMaxInputBytes = 4 * 1024 * 1024
	DefaultReadTimeout   = 2 * time.Second
)

// ErrInputTooLarge is returned when a hook input exceeds the byte limit
var ErrInputTooLarge = errors.New("hook input exceeds limit")

// ReadHookInput reads and decodes one hook input document.
// An interactive terminal or an empty stream yields an empty input. The read
// gives up after timeout so a stdin that is never closed cannot stall the agent.
func ReadHookInput(r io.Reader, maxBytes int64, timeout time.Duration) (domain.HookInput, error) {
	var input domain.HookInput

	if f, ok := r.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return input, nil
		}
	}

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
		done <- result{data: data, err: err}
	}()

	var data []byte
	select {
	case res := <-done:
		if res.err != nil {
			return input, fmt.Errorf("failed to read hook input: %w", res.err)
		}
		data = res.data
	case <-time.After(timeout):
		return input, fmt.Errorf("timed out reading hook input after %s", timeout)
	}

	if int64(len(data)) > maxBytes {
		return input, fmt.Errorf("%w (%d bytes)", ErrInputTooLarge, maxBytes)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return input, nil
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return input, fmt.Errorf("failed to decode hook input: %w", err)
	}
	return input, nil
}
