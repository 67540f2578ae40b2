//go:build windows

package sound

// commandsFor plays system sounds through PowerShell
func commandsFor(cue Cue) []command {
	var sound string
	switch cue {
	case CueAttention:
		sound = "Exclamation"
	case CueDone:
		sound = "Asterisk"
	case CueStart:
		sound = "Question"
	default:
		sound = "Beep"
	}

	return []command{
		{args: []string{"-c", "[System.Media.SystemSounds]::" + sound + ".Play()"}, name: "powershell"},
		{args: []string{"-c", "[System.Media.SystemSounds]::Beep.Play()"}, name: "powershell"},
	}
}
