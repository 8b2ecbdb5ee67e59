package integrity

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/repair"
)

var ErrPartialConsistency = errors.New("back-references partially updated")

// FailedStep is one back-reference write that did not apply.
type FailedStep struct {
	Target   repair.Target
	TargetID kernel.UUID
	Action   repair.Action
	Err      error
	// Recorded is false when the repair row itself could not be written.
	Recorded bool
}

func (s FailedStep) String() string {
	return fmt.Sprintf("%s on %s %s: %v", s.Action, s.Target, s.TargetID, s.Err)
}

// PartialConsistencyError reports that the primary write succeeded but some
// back-reference lists were left stale. It is not a request failure.
type PartialConsistencyError struct {
	ShipmentID kernel.UUID
	Failed     []FailedStep
}

func (e *PartialConsistencyError) Error() string {
	parts := make([]string, 0, len(e.Failed))
	for _, step := range e.Failed {
		parts = append(parts, step.String())
	}
	return fmt.Sprintf("%s for shipment %s: %s", ErrPartialConsistency, e.ShipmentID, strings.Join(parts, "; "))
}

func (e *PartialConsistencyError) Unwrap() error {
	return ErrPartialConsistency
}

// IsPartial reports whether err only signals stale back-references.
func IsPartial(err error) bool {
	var partial *PartialConsistencyError
	return errors.As(err, &partial)
}
