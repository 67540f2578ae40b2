package ports

import "github.com/renato0307/trailhook/internal/domain"

// RecordEmitter writes event records to an output channel.
// Emit never fails from the caller's point of view.
type RecordEmitter interface {
	Emit(rec domain.Record)
}
