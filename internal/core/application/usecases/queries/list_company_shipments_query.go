package queries

import (
	"context"
	"errors"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListCompanyShipmentsQueryIsNotConstructed = errors.New(
	"ListCompanyShipmentsQuery must be created via NewListCompanyShipmentsQuery constructor",
)

// ListCompanyShipmentsQuery lists shipments routed through one company,
// straight from the shipments table. An unknown company yields an empty list.
type ListCompanyShipmentsQuery struct {
	caller    identity.Caller
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListCompanyShipmentsQuery(caller identity.Caller, companyID kernel.UUID) (ListCompanyShipmentsQuery, error) {
	if err := companyID.Validate(); err != nil {
		return ListCompanyShipmentsQuery{}, err
	}

	return ListCompanyShipmentsQuery{caller: caller, companyID: companyID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCompanyShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListCompanyShipmentsQueryIsNotConstructed)
}

type ListCompanyShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewListCompanyShipmentsQueryHandler(db *gorm.DB) ListCompanyShipmentsQueryHandler {
	return ListCompanyShipmentsQueryHandler{db: db}
}

func (h ListCompanyShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListCompanyShipmentsQuery,
) ([]ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := identity.RequireAdministrator(query.caller); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(shipmentViewSelect+`
	WHERE s.company_id = ?`+shipmentViewOrder, query.companyID.Bytes()).
		Rows()
	if err != nil {
		return nil, errs.WrapDeadline("list company shipments", err)
	}
	defer rows.Close()

	views, err := scanShipmentViews(rows)
	return views, errs.WrapDeadline("list company shipments", err)
}
