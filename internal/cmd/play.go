package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/trailhook/internal/adapters/console"
	"github.com/renato0307/trailhook/internal/adapters/jsonl"
	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/ports"
	"github.com/renato0307/trailhook/internal/services"
)

// PlayCmd replays a recording with its original timing, scaled by --speed
type PlayCmd struct {
	Events  bool    `help:"Print every event at once without timing"`
	Format  string  `help:"Output format (text or json)" default:"text" enum:"text,json" short:"f"`
	Name    string  `arg:"" help:"Recording short name, file name or path"`
	Speed   float64 `help:"Playback speed multiplier" default:"1" short:"s"`
	Verbose bool    `help:"Include metadata fields in text output" short:"v"`
}

// Run executes the play command
func (p *PlayCmd) Run(cli *CLI, ctx context.Context) error {
	path, err := cli.Container.Catalog.Resolve(p.Name)
	if err != nil {
		return err
	}

	player, err := services.LoadRecording(cli.Container.Store, path)
	if err != nil {
		return err
	}

	out := p.observer()
	if p.Events {
		for _, rec := range player.Events() {
			if err := out.Observe(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	}

	if p.Format == "text" {
		meta := player.Metadata()
		fmt.Fprintf(os.Stderr, "Playing %s (%s, %s, %d events, %s at %gx)\n",
			path, meta.Model, meta.Task, len(player.Events()), player.Duration(), p.Speed)
	}
	return player.Play(ctx, out, p.Speed)
}

func (p *PlayCmd) observer() ports.Observer {
	if p.Format == "json" {
		emitter := jsonl.NewWriterEmitter(os.Stdout, domain.ChannelPrimary)
		return ports.ObserverFunc(func(ctx context.Context, rec domain.Record) error {
			emitter.Emit(rec)
			return nil
		})
	}
	return console.NewPrinter(os.Stdout, p.Verbose)
}
