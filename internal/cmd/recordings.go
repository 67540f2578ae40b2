package cmd

import (
	"fmt"
	"os"

	"github.com/renato0307/trailhook/internal/adapters/console"
)

// RecordingsCmd groups the recording commands
type RecordingsCmd struct {
	List RecordingsListCmd `cmd:"list" help:"List recordings" default:"1"`
}

// RecordingsListCmd lists the recordings in the recordings directory
type RecordingsListCmd struct{}

// Run executes the list command
func (r *RecordingsListCmd) Run(cli *CLI) error {
	recordings, err := cli.Container.Catalog.List()
	if err != nil {
		return fmt.Errorf("failed to list recordings: %w", err)
	}

	if len(recordings) == 0 {
		fmt.Printf("No recordings in %s\n", cli.Container.Catalog.Dir())
		return nil
	}

	console.PrintRecordings(os.Stdout, recordings)
	return nil
}
