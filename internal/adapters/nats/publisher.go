// Package nats publishes observed event records to a NATS server.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/renato0307/trailhook/internal/domain"
	"github.com/renato0307/trailhook/internal/logging"
	"github.com/renato0307/trailhook/internal/ports"
)

// DefaultSubjectPrefix is the subject root; the session id is appended as the last token
const DefaultSubjectPrefix = "trailhook.events"

// HeaderEventType carries the event type so subscribers can filter without decoding
const HeaderEventType = "Trailhook-Event-Type"

// Publisher is an observer that publishes every record as one NATS message
type Publisher struct {
	nc     *nats.Conn
	prefix string
}

// Compile-time interface verification
var _ ports.Observer = (*Publisher)(nil)

// Connect establishes a connection to NATS
func Connect(url, prefix string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("trailhook"),
		nats.Timeout(5*time.Second),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	logging.Logger.Info("NATS connected", "url", url, "prefix", prefix)
	return &Publisher{nc: nc, prefix: prefix}, nil
}

// Observe implements Observer
func (p *Publisher) Observe(ctx context.Context, rec domain.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	msg := nats.NewMsg(Subject(p.prefix, rec.SessionID))
	msg.Data = data
	msg.Header.Set(HeaderEventType, string(rec.EventType))

	if err := p.nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("nats publish %s: %w", msg.Subject, err)
	}
	return nil
}

// Close flushes pending messages and closes the connection
func (p *Publisher) Close() error {
	if err := p.nc.FlushTimeout(2 * time.Second); err != nil {
		logging.Logger.Warn("NATS flush failed", "error", err)
	}
	p.nc.Close()
	return nil
}

// Subject builds the subject for a session. Characters with a meaning in
// subjects (dots, wildcards, whitespace) are replaced in the session token.
func Subject(prefix, sessionID string) string {
	if sessionID == "" {
		sessionID = "unknown"
	}
	token := strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\n', '\r':
			return '_'
		}
		return r
	}, sessionID)
	return prefix + "." + token
}
