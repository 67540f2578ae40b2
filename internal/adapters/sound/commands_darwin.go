//go:build darwin

package sound

// commandsFor plays system sounds with afplay
func commandsFor(cue Cue) []command {
	var files []string
	switch cue {
	case CueAttention:
		files = []string{"/System/Library/Sounds/Ping.aiff", "/System/Library/Sounds/Pop.aiff"}
	case CueDone:
		files = []string{"/System/Library/Sounds/Glass.aiff", "/System/Library/Sounds/Tink.aiff"}
	case CueStart:
		files = []string{"/System/Library/Sounds/Submarine.aiff", "/System/Library/Sounds/Purr.aiff"}
	default:
		files = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	commands := make([]command, len(files))
	for i, f := range files {
		commands[i] = command{args: []string{f}, name: "afplay"}
	}
	return commands
}
