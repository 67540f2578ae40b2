//go:build linux

package sound

// freedesktopSounds is where the freedesktop sound theme is installed
const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

// commandsFor plays freedesktop theme sounds with paplay (PulseAudio) or aplay (ALSA)
func commandsFor(cue Cue) []command {
	var sound string
	switch cue {
	case CueAttention:
		sound = "message"
	case CueDone:
		sound = "complete"
	case CueStart:
		sound = "service-login"
	default:
		sound = "bell"
	}

	return []command{
		{args: []string{freedesktopSounds + sound + ".oga"}, name: "paplay"},
		{args: []string{freedesktopSounds + sound + ".wav"}, name: "aplay"},
	}
}
