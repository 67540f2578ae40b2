package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/trailhook/internal/config"
	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// lineBuffer bounds how many lines the reader may get ahead of the consumer
const lineBuffer = 256

// exitResult is what Process.Wait reported
type exitResult struct {
	code int
	err  error
}

// Merger runs a monitored process, reads its merged output line by line,
// forwards every line unmodified and hands every event record found to the observers.
// A Merger runs one session at a time.
type Merger struct {
	codec    ports.StreamCodec
	launcher ports.ProcessLauncher
	mu       sync.Mutex
	now      func() time.Time
	opts     MergerOptions
	session  domain.Session
}

// NewMerger creates a Merger in the idle state
func NewMerger(launcher ports.ProcessLauncher, codec ports.StreamCodec, opts MergerOptions) *Merger {
	if opts.DrainTimeout <= 0 {
		opts.DrainTimeout = config.DefaultDrainTimeout
	}
	if opts.StopGrace <= 0 {
		opts.StopGrace = config.DefaultStopGrace
	}
	if opts.Passthrough == nil {
		opts.Passthrough = io.Discard
	}

	return &Merger{
		codec:    codec,
		launcher: launcher,
		now:      time.Now,
		opts:     opts,
		session:  domain.Session{State: domain.StateIdle},
	}
}

// Session returns a snapshot of the current session
func (m *Merger) Session() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Run launches the process described by spec and blocks until the session terminates.
// The session id is exported to the process as TRAILHOOK_SESSION_ID. Cancelling ctx
// stops the process group; events observed before that are never discarded.
func (m *Merger) Run(ctx context.Context, spec ports.LaunchSpec) (domain.Session, error) {
	command := strings.TrimSpace(strings.Join(append([]string{spec.Name}, spec.Args...), " "))
	id, err := m.begin(command)
	if err != nil {
		return m.Session(), err
	}

	spec.Env = append(slices.Clone(spec.Env), config.EnvSessionID+"="+id)
	proc, err := m.launcher.Launch(ctx, spec)
	if err != nil {
		m.transition(ctx, domain.StateTerminated, func(s *domain.Session) { s.ExitCode = -1 })
		return m.Session(), fmt.Errorf("failed to launch %s: %w", spec.Name, err)
	}

	return m.loop(ctx, proc.Output(), proc)
}

// Attach consumes an already running stream, such as piped stdin or a followed file,
// as one session. End of stream plays the role of process exit.
func (m *Merger) Attach(ctx context.Context, label string, r io.Reader) (domain.Session, error) {
	if _, err := m.begin(label); err != nil {
		return m.Session(), err
	}
	return m.loop(ctx, r, nil)
}

// begin moves a fresh session into place, refusing while another one is active
func (m *Merger) begin(command string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.State == domain.StateRunning || m.session.State == domain.StateDraining {
		return "", fmt.Errorf("%w: %s", domain.ErrSessionRunning, m.session.ID)
	}

	m.session = domain.Session{
		Command:       command,
		ID:            uuid.New().String(),
		Provider:      m.opts.Provider,
		RecordingPath: m.opts.RecordingPath,
		State:         domain.StateIdle,
	}
	return m.session.ID, nil
}

// loop drives the Running, Draining and Terminated states from one select loop
func (m *Merger) loop(ctx context.Context, r io.Reader, proc ports.Process) (domain.Session, error) {
	lines := make(chan []byte, lineBuffer)
	stop := make(chan struct{})
	go readLines(m.codec.NewLineReader(r), lines, stop)

	var exitCh chan exitResult
	if proc != nil {
		exitCh = make(chan exitResult, 1)
		go func() {
			code, err := proc.Wait()
			exitCh <- exitResult{code: code, err: err}
		}()
	}

	m.transition(ctx, domain.StateRunning, func(s *domain.Session) { s.StartedAt = m.now() })

	var (
		cancelled  bool
		ctxDone    = ctx.Done()
		drainC     <-chan time.Time
		drainTimer *time.Timer
		eof        bool
		exit       exitResult
		exited     = proc == nil
		linesCh    = lines
		waitCh     = exitCh
	)

	startDraining := func(reason string) {
		if drainTimer != nil {
			return
		}
		logging.Logger.Info("Session draining", "session_id", m.Session().ID, "reason", reason)
		m.transition(ctx, domain.StateDraining, nil)
		drainTimer = time.NewTimer(m.opts.DrainTimeout)
		drainC = drainTimer.C
	}

loop:
	for !(eof && exited) {
		select {
		case line, ok := <-linesCh:
			if !ok {
				eof = true
				linesCh = nil
				if proc == nil {
					startDraining("end of stream")
				}
				continue
			}
			m.handleLine(ctx, line)

		case res := <-waitCh:
			exited = true
			exit = res
			waitCh = nil
			startDraining("process exited")

		case <-ctxDone:
			ctxDone = nil
			cancelled = true
			startDraining("cancelled")
			if proc != nil {
				go func() {
					if err := proc.Stop(m.opts.StopGrace); err != nil {
						logging.Logger.Warn("Failed to stop process", "error", err)
					}
				}()
			}

		case <-drainC:
			m.handleBuffered(ctx, linesCh)
			logging.Logger.Warn("Drain timeout elapsed, discarding unread output",
				"session_id", m.Session().ID,
				"timeout", m.opts.DrainTimeout)
			break loop
		}
	}

	close(stop)
	if drainTimer != nil {
		drainTimer.Stop()
	}
	if proc != nil {
		if !exited {
			if err := proc.Stop(m.opts.StopGrace); err != nil {
				logging.Logger.Warn("Failed to stop process", "error", err)
			}
			exit = <-exitCh
		}
		_ = proc.Close()
	}

	m.transition(ctx, domain.StateTerminated, func(s *domain.Session) {
		s.EndedAt = m.now()
		s.ExitCode = exit.code
	})

	session := m.Session()
	logging.Logger.Info("Session terminated",
		"session_id", session.ID,
		"exit_code", session.ExitCode,
		"events", session.EventCount)

	if cancelled {
		return session, ctx.Err()
	}
	if exit.err != nil {
		return session, fmt.Errorf("failed waiting for process: %w", exit.err)
	}
	return session, nil
}

// readLines feeds lines into the bounded channel until end of stream or stop
func readLines(reader ports.LineReader, lines chan<- []byte, stop <-chan struct{}) {
	defer close(lines)
	for {
		line, err := reader.Next()
		if len(line) > 0 {
			select {
			case lines <- line:
			case <-stop:
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logging.Logger.Debug("Stream read ended", "error", err)
			}
			return
		}
	}
}

// handleBuffered handles the lines already read without waiting for more
func (m *Merger) handleBuffered(ctx context.Context, lines <-chan []byte) {
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return
			}
			m.handleLine(ctx, line)
		default:
			return
		}
	}
}

// handleLine forwards a raw line and observes every record it carries
func (m *Merger) handleLine(ctx context.Context, line []byte) {
	if _, err := m.opts.Passthrough.Write(line); err != nil {
		logging.Logger.Debug("Failed to forward line", "error", err)
	}

	records := m.codec.ExtractRecords(line)
	if len(records) == 0 {
		return
	}

	// Observers keep working while the session drains after a cancellation
	observeCtx := context.WithoutCancel(ctx)
	for _, rec := range records {
		m.mu.Lock()
		m.session.EventCount++
		m.mu.Unlock()

		for _, obs := range m.opts.Observers {
			if err := obs.Observe(observeCtx, rec); err != nil {
				logging.Logger.Warn("Observer failed", "event_type", rec.EventType, "error", err)
			}
		}
	}
}

// transition moves the session to state and notifies the listener with a snapshot
func (m *Merger) transition(ctx context.Context, state domain.SessionState, update func(s *domain.Session)) {
	m.mu.Lock()
	m.session.State = state
	if update != nil {
		update(&m.session)
	}
	snapshot := m.session
	m.mu.Unlock()

	logging.Logger.Debug("Session state changed", "session_id", snapshot.ID, "state", state)
	if m.opts.Listener != nil {
		m.opts.Listener.SessionChanged(context.WithoutCancel(ctx), snapshot)
	}
}
