package queries

import (
	"context"
	"errors"

	"logistics/internal/core/application/identity"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListCallerShipmentsQueryIsNotConstructed = errors.New(
	"ListCallerShipmentsQuery must be created via NewListCallerShipmentsQuery constructor",
)

// ListCallerShipmentsQuery lists the shipments the caller created. It reads
// the shipments table by created_by rather than the user's back-reference
// list, so it is correct even while a repair is pending.
type ListCallerShipmentsQuery struct {
	caller identity.Caller

	guard guard.ConstructorGuard
}

func NewListCallerShipmentsQuery(caller identity.Caller) ListCallerShipmentsQuery {
	return ListCallerShipmentsQuery{caller: caller, guard: guard.NewConstructorGuard()}
}

func (q ListCallerShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListCallerShipmentsQueryIsNotConstructed)
}

type ListCallerShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewListCallerShipmentsQueryHandler(db *gorm.DB) ListCallerShipmentsQueryHandler {
	return ListCallerShipmentsQueryHandler{db: db}
}

func (h ListCallerShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListCallerShipmentsQuery,
) ([]ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := identity.RequireAuthenticated(query.caller); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(shipmentViewSelect+`
	WHERE s.created_by = ?`+shipmentViewOrder, query.caller.UserID.Bytes()).
		Rows()
	if err != nil {
		return nil, errs.WrapDeadline("list caller shipments", err)
	}
	defer rows.Close()

	views, err := scanShipmentViews(rows)
	return views, errs.WrapDeadline("list caller shipments", err)
}
