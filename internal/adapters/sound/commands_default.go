//go:build !darwin && !linux && !windows

package sound

// commandsFor has nothing to offer; the notifier falls back to the terminal bell
func commandsFor(cue Cue) []command {
	return nil
}
