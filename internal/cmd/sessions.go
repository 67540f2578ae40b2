package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/trailhook/internal/adapters/console"
)

// SessionsCmd groups the session commands
type SessionsCmd struct {
	List SessionsListCmd `cmd:"list" help:"List the most recent sessions" default:"1"`
}

// SessionsListCmd lists tracked sessions
type SessionsListCmd struct {
	Limit int `help:"Maximum number of sessions" default:"20" short:"n"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI, ctx context.Context) error {
	service, err := cli.Container.SessionService(SessionOptions{})
	if err != nil {
		return err
	}

	sessions, err := service.List(ctx, s.Limit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	console.PrintSessions(os.Stdout, sessions)
	return nil
}
