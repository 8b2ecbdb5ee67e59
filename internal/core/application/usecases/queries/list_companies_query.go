package queries

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrListCompaniesQueryIsNotConstructed = errors.New(
	"ListCompaniesQuery must be created via NewListCompaniesQuery constructor",
)

// ListCompaniesQuery feeds the company picker of the shipment form, so any
// signed-in caller may run it.
type ListCompaniesQuery struct {
	caller identity.Caller

	guard guard.ConstructorGuard
}

func NewListCompaniesQuery(caller identity.Caller) ListCompaniesQuery {
	return ListCompaniesQuery{caller: caller, guard: guard.NewConstructorGuard()}
}

func (q ListCompaniesQuery) Validate() error {
	return q.guard.Validate(ErrListCompaniesQueryIsNotConstructed)
}

type CompanyView struct {
	ID            kernel.UUID
	Name          string
	ShipmentCount int
	CreatedAt     time.Time
}

type ListCompaniesQueryHandler struct {
	db *gorm.DB
}

func NewListCompaniesQueryHandler(db *gorm.DB) ListCompaniesQueryHandler {
	return ListCompaniesQueryHandler{db: db}
}

func (h ListCompaniesQueryHandler) Handle(ctx context.Context, query ListCompaniesQuery) ([]CompanyView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := identity.RequireAuthenticated(query.caller); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			shipment_ids,
			created_at
		FROM companies
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, errs.WrapDeadline("list companies", err)
	}
	defer rows.Close()

	companies := make([]CompanyView, 0)
	for rows.Next() {
		var (
			view        CompanyView
			id          uuid.UUID
			shipmentIDs pq.StringArray
		)

		if err = rows.Scan(&id, &view.Name, &shipmentIDs, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		view.ShipmentCount = len(shipmentIDs)
		companies = append(companies, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.WrapDeadline("list companies", err)
	}

	return companies, nil
}
