package storage

import (
	"time"

	"github.com/renato0307/trailhook/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel) domain.Session {
	var endedAt time.Time
	if m.EndedAt != nil {
		endedAt = *m.EndedAt
	}
	return domain.Session{
		Command:       m.Command,
		EndedAt:       endedAt,
		EventCount:    m.EventCount,
		ExitCode:      m.ExitCode,
		ID:            m.ID,
		Provider:      m.Provider,
		RecordingPath: m.RecordingPath,
		StartedAt:     m.StartedAt,
		State:         domain.SessionState(m.State),
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session) SessionModel {
	var endedAt *time.Time
	if !s.EndedAt.IsZero() {
		t := s.EndedAt.UTC()
		endedAt = &t
	}
	return SessionModel{
		Command:       s.Command,
		EndedAt:       endedAt,
		EventCount:    s.EventCount,
		ExitCode:      s.ExitCode,
		ID:            s.ID,
		Provider:      s.Provider,
		RecordingPath: s.RecordingPath,
		StartedAt:     s.StartedAt.UTC(),
		State:         string(s.State),
	}
}
