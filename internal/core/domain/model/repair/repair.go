// Package repair models a recorded back-reference step that failed after its
// primary write succeeded. Repairs are re-applied out of band by the
// reconciliation job.
package repair

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRepairIsNotConstructed = errors.New("Repair must be created via NewRepair or RestoreRepair")

// Target names the collection whose back-reference list is out of date.
type Target string

const (
	TargetCompany Target = "company"
	TargetUser    Target = "user"
)

// Action is the idempotent list operation to re-apply.
type Action string

const (
	ActionAppend Action = "append"
	ActionRemove Action = "remove"
)

// Repair is one pending back-reference fix.
type Repair struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	target     Target
	targetID   kernel.UUID
	action     Action
	reason     string
	attempts   int
	createdAt  time.Time

	guard guard.ConstructorGuard
}

func NewRepair(
	id, shipmentID kernel.UUID,
	target Target,
	targetID kernel.UUID,
	action Action,
	reason string,
	createdAt time.Time,
) (*Repair, error) {
	return RestoreRepair(id, shipmentID, target, targetID, action, reason, 0, createdAt)
}

func RestoreRepair(
	id, shipmentID kernel.UUID,
	target Target,
	targetID kernel.UUID,
	action Action,
	reason string,
	attempts int,
	createdAt time.Time,
) (*Repair, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		targetID.Validate(),
		validateTarget(target),
		validateAction(action),
	); err != nil {
		return nil, err
	}
	if attempts < 0 {
		return nil, errs.NewValueIsOutOfRangeError("attempts", attempts, 0, "unbounded")
	}

	return &Repair{
		id:         id,
		shipmentID: shipmentID,
		target:     target,
		targetID:   targetID,
		action:     action,
		reason:     reason,
		attempts:   attempts,
		createdAt:  createdAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (r *Repair) Validate() error {
	if r == nil {
		return ErrRepairIsNotConstructed
	}
	return r.guard.Validate(ErrRepairIsNotConstructed)
}

func (r *Repair) ID() kernel.UUID         { return r.id }
func (r *Repair) ShipmentID() kernel.UUID { return r.shipmentID }
func (r *Repair) Target() Target          { return r.target }
func (r *Repair) TargetID() kernel.UUID   { return r.targetID }
func (r *Repair) Action() Action          { return r.action }
func (r *Repair) Reason() string          { return r.reason }
func (r *Repair) Attempts() int           { return r.attempts }
func (r *Repair) CreatedAt() time.Time    { return r.createdAt }

// AsRemoval turns an append repair into a removal, used when the shipment it
// refers to no longer exists.
func (r *Repair) AsRemoval() {
	r.action = ActionRemove
}

func (r *Repair) String() string {
	return fmt.Sprintf("%s shipment %s on %s %s", r.action, r.shipmentID, r.target, r.targetID)
}

func validateTarget(t Target) error {
	if t != TargetCompany && t != TargetUser {
		return errs.NewValueIsInvalidErrorWithCause("target", fmt.Errorf("%q is not a known target", t))
	}
	return nil
}

func validateAction(a Action) error {
	if a != ActionAppend && a != ActionRemove {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a known action", a))
	}
	return nil
}
