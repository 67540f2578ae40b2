package storage

import "time"

// SessionModel is the GORM model for sessions table
type SessionModel struct {
	Command       string `gorm:"not null;default:''"`
	CreatedAt     time.Time
	EndedAt       *time.Time `gorm:"default:null"`
	EventCount    int        `gorm:"not null;default:0"`
	ExitCode      int        `gorm:"not null;default:0"`
	ID            string     `gorm:"primaryKey"`
	Provider      string     `gorm:"default:''"`
	RecordingPath string     `gorm:"default:''"`
	StartedAt     time.Time  `gorm:"not null;index:idx_started_at"`
	State         string     `gorm:"not null;default:'idle';check:state IN ('idle','running','draining','terminated')"`
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }
