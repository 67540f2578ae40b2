package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// DockerBinary is the command used to stream container logs
const DockerBinary = "docker"

// SessionService runs monitored commands and captures external streams,
// optionally recording what was observed
type SessionService struct {
	base     MergerOptions
	catalog  *Catalog
	codec    ports.StreamCodec
	follower ports.FileFollower
	launcher ports.ProcessLauncher
	sessions ports.SessionReader
	store    ports.RecordingStore
}

// NewSessionService creates a new SessionService.
// base carries the options every merger starts from (timeouts, provider, listener, extra observers).
func NewSessionService(
	store ports.RecordingStore,
	catalog *Catalog,
	codec ports.StreamCodec,
	launcher ports.ProcessLauncher,
	follower ports.FileFollower,
	sessions ports.SessionReader,
	base MergerOptions,
) *SessionService {
	return &SessionService{
		base:     base,
		catalog:  catalog,
		codec:    codec,
		follower: follower,
		launcher: launcher,
		sessions: sessions,
		store:    store,
	}
}

// Run launches a command as a monitored session
func (s *SessionService) Run(ctx context.Context, params RunParams) (SessionResult, error) {
	if len(params.Args) == 0 {
		return SessionResult{}, fmt.Errorf("no command to run")
	}

	var recorder *Recorder
	if params.Record {
		var err error
		recorder, err = s.startRecording(params.Meta, params.OutputPath)
		if err != nil {
			return SessionResult{}, err
		}
	}

	merger := NewMerger(s.launcher, s.codec, s.mergerOptions(params.Echo, recorder, params.Passthrough))
	session, runErr := merger.Run(ctx, ports.LaunchSpec{
		Args:  params.Args[1:],
		Dir:   params.Dir,
		Name:  params.Args[0],
		PTY:   params.PTY,
		Stdin: params.Stdin,
	})

	return s.finish(session, recorder, runErr)
}

// Capture records a stream produced elsewhere: a container's logs, a file or stdin
func (s *SessionService) Capture(ctx context.Context, params CaptureParams) (SessionResult, error) {
	recorder, err := s.startRecording(params.Meta, params.OutputPath)
	if err != nil {
		return SessionResult{}, err
	}

	merger := NewMerger(s.launcher, s.codec, s.mergerOptions(params.Echo, recorder, nil))

	var (
		runErr  error
		session domain.Session
	)
	switch {
	case params.ContainerID != "":
		session, runErr = merger.Run(ctx, ports.LaunchSpec{
			Args: []string{"logs", "--follow", params.ContainerID},
			Name: DockerBinary,
		})

	case params.InputPath != "":
		var r io.ReadCloser
		r, runErr = s.follower.Open(ctx, params.InputPath, params.Follow)
		if runErr == nil {
			session, runErr = merger.Attach(ctx, params.InputPath, r)
			_ = r.Close()
		}

	default:
		if params.Stdin == nil {
			runErr = fmt.Errorf("no input to capture")
			break
		}
		session, runErr = merger.Attach(ctx, "stdin", params.Stdin)
	}

	// Interrupting a capture is how a followed stream is normally ended
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	return s.finish(session, recorder, runErr)
}

// List returns the most recently started sessions
func (s *SessionService) List(ctx context.Context, limit int) ([]domain.Session, error) {
	return s.sessions.List(ctx, limit)
}

func (s *SessionService) startRecording(meta RecordingMeta, outputPath string) (*Recorder, error) {
	if outputPath == "" {
		outputPath = s.catalog.PathFor(meta)
	}

	sink, err := s.store.Create(outputPath)
	if err != nil {
		return nil, err
	}

	recorder := NewRecorder(sink, meta)
	if err := recorder.Start(); err != nil {
		_ = sink.Close()
		return nil, err
	}
	return recorder, nil
}

func (s *SessionService) mergerOptions(echo ports.Observer, recorder *Recorder, passthrough io.Writer) MergerOptions {
	opts := s.base
	opts.Observers = slices.Clone(s.base.Observers)
	opts.Passthrough = passthrough
	if recorder != nil {
		opts.Observers = append(opts.Observers, recorder)
		opts.RecordingPath = recorder.Path()
	}
	if echo != nil {
		opts.Observers = append(opts.Observers, echo)
	}
	return opts
}

// finish closes the recording whatever happened, so partial recordings stay valid
func (s *SessionService) finish(session domain.Session, recorder *Recorder, runErr error) (SessionResult, error) {
	result := SessionResult{Session: session}
	if recorder == nil {
		return result, runErr
	}

	closeErr := recorder.Close()
	result.EventCount = recorder.Count()
	result.RecordingPath = recorder.Path()
	logging.Logger.Info("Session recorded",
		"session_id", session.ID,
		"path", result.RecordingPath,
		"events", result.EventCount)

	return result, errors.Join(runErr, closeErr)
}
