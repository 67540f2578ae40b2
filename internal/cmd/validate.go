package cmd

import (
	"fmt"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/services"
)

// ValidateCmd runs the ownership validation pass over the built-in emitters
type ValidateCmd struct{}

// Run executes the validate command
func (v *ValidateCmd) Run(cli *CLI) error {
	report, err := services.ValidateOwnership(map[domain.Owner]services.EventSource{
		domain.OwnerGitHooks:       cli.Container.GitHooks,
		domain.OwnerHookDispatcher: cli.Container.Dispatcher,
	})
	if err != nil {
		return err
	}

	for _, owner := range domain.Owners() {
		fmt.Printf("%-16s %d event types\n", owner, report.Counts[owner])
	}
	fmt.Printf("OK: %d event types, each with exactly one owner\n", report.Total)
	return nil
}
