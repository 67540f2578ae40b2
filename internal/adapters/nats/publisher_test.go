package nats

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/trailhook/internal/domain"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		expected  string
	}{
		{"uuid", "0b6f1c2e-1111-2222-3333-444455556666", "trailhook.events.0b6f1c2e-1111-2222-3333-444455556666"},
		{"empty", "", "trailhook.events.unknown"},
		{"dots and wildcards", "a.b*c>d e", "trailhook.events.a_b_c_d_e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Subject(DefaultSubjectPrefix, tt.sessionID))
		})
	}
}

// TestPublisher_Observe requires a running server, e.g. NATS_URL=nats://localhost:4222
func TestPublisher_Observe(t *testing.T) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("requires NATS_URL")
	}

	p, err := Connect(url, "trailhook.test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	sub, err := p.nc.SubscribeSync("trailhook.test.>")
	require.NoError(t, err)

	rec := domain.NewRecord(domain.Envelope{SessionID: "s1"}, domain.AgentStopped{})
	require.NoError(t, p.Observe(context.Background(), rec))

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "trailhook.test.s1", msg.Subject)
	assert.Equal(t, "agent_stopped", msg.Header.Get(HeaderEventType))

	var got domain.Record
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, domain.EventAgentStopped, got.EventType)
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect("nats://127.0.0.1:1", "")

	assert.ErrorContains(t, err, "nats connect")
}
