package services

import (
	"errors"
	"fmt"
	"slices"

	"github.com/renato0307/trailhook/internal/domain"
)

// EventSource is anything that can name the event types it may emit
type EventSource interface {
	EventTypes() []domain.EventType
}

// OwnershipReport summarizes a successful validation pass
type OwnershipReport struct {
	Counts map[domain.Owner]int
	Total  int
}

// ValidateOwnership checks the emitters' vocabularies against the ownership partition:
// every type a source can emit must be owned by that source, no type may be emitted by
// two sources, and every owned type must have a source that emits it.
// All violations are reported together.
func ValidateOwnership(sources map[domain.Owner]EventSource) (OwnershipReport, error) {
	var errs []error
	emittedBy := make(map[domain.EventType]domain.Owner)
	report := OwnershipReport{Counts: make(map[domain.Owner]int)}

	owners := make([]domain.Owner, 0, len(sources))
	for owner := range sources {
		owners = append(owners, owner)
	}
	slices.Sort(owners)

	for _, owner := range owners {
		for _, t := range sources[owner].EventTypes() {
			if previous, ok := emittedBy[t]; ok && previous != owner {
				errs = append(errs, fmt.Errorf("%w: %s is emitted by both %s and %s",
					domain.ErrOwnershipConflict, t, previous, owner))
				continue
			}
			emittedBy[t] = owner

			expected, ok := domain.OwnerOf(t)
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("%w: %s emitted by %s has no owner",
					domain.ErrOwnershipConflict, t, owner))
			case expected != owner:
				errs = append(errs, fmt.Errorf("%w: %s emitted by %s is owned by %s",
					domain.ErrOwnershipConflict, t, owner, expected))
			default:
				report.Counts[owner]++
				report.Total++
			}
		}
	}

	for _, owner := range domain.Owners() {
		for _, t := range domain.OwnedTypes(owner) {
			if _, ok := emittedBy[t]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s owned by %s is never emitted",
					domain.ErrOwnershipConflict, t, owner))
			}
		}
	}

	return report, errors.Join(errs...)
}
