// Package integrity keeps the company and user shipment lists in step with
// the shipments table without cross-row transactions.
//
// The shipment row is authoritative. List updates run after it as separate
// per-row writes; a failed list update is logged, stored as a repair and
// re-applied later by Reconcile. All list writes are idempotent, so a repair
// may run any number of times.
package integrity

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/repair"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

const recordTimeout = 2 * time.Second

type Coordinator struct {
	shipments ports.ShipmentRepository
	companies ports.CompanyRepository
	users     ports.UserRepository
	repairs   ports.RepairRepository
	logger    *slog.Logger
}

func NewCoordinator(store ports.Store, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		shipments: store.ShipmentRepository(),
		companies: store.CompanyRepository(),
		users:     store.UserRepository(),
		repairs:   store.RepairRepository(),
		logger:    logger.With("component", "IntegrityCoordinator"),
	}
}

// LinkCreated appends a freshly persisted shipment to its company list and
// then to its creator's list. It returns nil or a *PartialConsistencyError.
func (c *Coordinator) LinkCreated(ctx context.Context, s *shipment.Shipment) error {
	steps := []step{
		{target: repair.TargetCompany, targetID: s.CompanyID(), action: repair.ActionAppend},
		{target: repair.TargetUser, targetID: s.CreatedBy(), action: repair.ActionAppend},
	}
	return c.runSteps(ctx, s.ID(), steps)
}

// Delete removes the shipment and then pulls it from both lists. Errors from
// the lookup or the delete itself are returned as is; list failures come back
// as a *PartialConsistencyError and never undo the delete.
func (c *Coordinator) Delete(ctx context.Context, id kernel.UUID) error {
	s, err := c.shipments.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = c.shipments.Delete(ctx, id); err != nil {
		return err
	}

	steps := []step{
		{target: repair.TargetCompany, targetID: s.CompanyID(), action: repair.ActionRemove},
		{target: repair.TargetUser, targetID: s.CreatedBy(), action: repair.ActionRemove},
	}
	return c.runSteps(ctx, id, steps)
}

// Repair re-applies one recorded step. An append whose shipment has since
// been deleted, before or during the append, is turned into a removal. A
// target that no longer exists has no list to fix and counts as repaired.
func (c *Coordinator) Repair(ctx context.Context, r *repair.Repair) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if r.Action() == repair.ActionAppend {
		exists, err := c.shipmentExists(ctx, r.ShipmentID())
		if err != nil {
			return err
		}
		if !exists {
			r.AsRemoval()
		}
	}

	if err := c.applyRepair(ctx, r); err != nil {
		return err
	}
	if r.Action() != repair.ActionAppend {
		return nil
	}

	// A delete between the check and the append leaves the id behind.
	exists, err := c.shipmentExists(ctx, r.ShipmentID())
	if err != nil {
		return err
	}
	if !exists {
		r.AsRemoval()
		return c.applyRepair(ctx, r)
	}
	return nil
}

func (c *Coordinator) applyRepair(ctx context.Context, r *repair.Repair) error {
	err := c.apply(ctx, step{target: r.Target(), targetID: r.TargetID(), action: r.Action()}, r.ShipmentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		c.logger.DebugContext(ctx, "repair target no longer exists", "repair", r.String())
		return nil
	}
	return err
}

func (c *Coordinator) shipmentExists(ctx context.Context, id kernel.UUID) (bool, error) {
	_, err := c.shipments.Get(ctx, id)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

// Reconcile runs up to limit pending repairs and returns how many were
// resolved and how many failed again.
func (c *Coordinator) Reconcile(ctx context.Context, limit int) (resolved, failed int, err error) {
	pending, err := c.repairs.ListPending(ctx, limit)
	if err != nil {
		return 0, 0, err
	}

	for _, r := range pending {
		if ctx.Err() != nil {
			return resolved, failed, ctx.Err()
		}

		if repairErr := c.Repair(ctx, r); repairErr != nil {
			failed++
			c.logger.WarnContext(ctx, "repair failed",
				"repair_id", r.ID().String(),
				"repair", r.String(),
				"attempts", r.Attempts()+1,
				"error", repairErr,
			)
			if recErr := c.repairs.RecordFailure(ctx, r.ID(), repairErr.Error()); recErr != nil {
				return resolved, failed, recErr
			}
			continue
		}

		if resolveErr := c.repairs.Resolve(ctx, r.ID()); resolveErr != nil {
			return resolved, failed, resolveErr
		}
		resolved++
	}

	return resolved, failed, nil
}

type step struct {
	target   repair.Target
	targetID kernel.UUID
	action   repair.Action
}

func (c *Coordinator) runSteps(ctx context.Context, shipmentID kernel.UUID, steps []step) error {
	var failed []FailedStep

	for _, st := range steps {
		err := c.apply(ctx, st, shipmentID)
		if err == nil {
			continue
		}

		c.logger.WarnContext(ctx, "back-reference update failed",
			"shipment_id", shipmentID.String(),
			"target", string(st.target),
			"target_id", st.targetID.String(),
			"action", string(st.action),
			"error", err,
		)
		failed = append(failed, FailedStep{
			Target:   st.target,
			TargetID: st.targetID,
			Action:   st.action,
			Err:      err,
			Recorded: c.record(ctx, shipmentID, st, err),
		})
	}

	if len(failed) == 0 {
		return nil
	}
	return &PartialConsistencyError{ShipmentID: shipmentID, Failed: failed}
}

func (c *Coordinator) apply(ctx context.Context, st step, shipmentID kernel.UUID) error {
	switch {
	case st.target == repair.TargetCompany && st.action == repair.ActionAppend:
		return c.companies.AppendShipment(ctx, st.targetID, shipmentID)
	case st.target == repair.TargetCompany && st.action == repair.ActionRemove:
		return c.companies.RemoveShipment(ctx, st.targetID, shipmentID)
	case st.target == repair.TargetUser && st.action == repair.ActionAppend:
		return c.users.AppendShipment(ctx, st.targetID, shipmentID)
	case st.target == repair.TargetUser && st.action == repair.ActionRemove:
		return c.users.RemoveShipment(ctx, st.targetID, shipmentID)
	}
	return errs.NewValueIsInvalidError("repair step")
}

// record stores the repair on a context detached from the request so an
// expired request deadline does not also lose the repair.
func (c *Coordinator) record(ctx context.Context, shipmentID kernel.UUID, st step, cause error) bool {
	r, err := repair.NewRepair(kernel.NewUUID(), shipmentID, st.target, st.targetID, st.action, cause.Error(), time.Now())
	if err != nil {
		c.logger.ErrorContext(ctx, "cannot build repair", "error", err)
		return false
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err = c.repairs.Add(recordCtx, r); err != nil {
		c.logger.ErrorContext(ctx, "cannot record repair, back-references stay stale until reconciled by hand",
			"repair", r.String(),
			"error", err,
		)
		return false
	}
	return true
}
