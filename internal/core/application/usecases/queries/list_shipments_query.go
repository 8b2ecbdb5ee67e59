package queries

import (
	"context"
	"errors"

	"logistics/internal/core/application/identity"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery lists every shipment for administrators, newest first.
type ListShipmentsQuery struct {
	caller identity.Caller

	guard guard.ConstructorGuard
}

func NewListShipmentsQuery(caller identity.Caller) ListShipmentsQuery {
	return ListShipmentsQuery{caller: caller, guard: guard.NewConstructorGuard()}
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// ListShipmentsQueryHandler reads all shipments with owner email and company
// names joined in.
//
// Example:
//
//	handler := NewListShipmentsQueryHandler(db)
//	views, err := handler.Handle(ctx, NewListShipmentsQuery(caller))
//	if errors.Is(err, identity.ErrForbidden) {
//	    // caller is not an administrator
//	}
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := identity.RequireAdministrator(query.caller); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(shipmentViewSelect + shipmentViewOrder).Rows()
	if err != nil {
		return nil, errs.WrapDeadline("list shipments", err)
	}
	defer rows.Close()

	views, err := scanShipmentViews(rows)
	return views, errs.WrapDeadline("list shipments", err)
}
