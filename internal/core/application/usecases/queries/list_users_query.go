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

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

type ListUsersQuery struct {
	caller identity.Caller

	guard guard.ConstructorGuard
}

func NewListUsersQuery(caller identity.Caller) ListUsersQuery {
	return ListUsersQuery{caller: caller, guard: guard.NewConstructorGuard()}
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// UserView is an account without its credential.
type UserView struct {
	ID            kernel.UUID
	Email         string
	IsAdmin       bool
	ShipmentCount int
	CreatedAt     time.Time
}

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle lists accounts ordered by email. ShipmentCount is the size of the
// back-reference list.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := identity.RequireAdministrator(query.caller); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			is_admin,
			shipment_ids,
			created_at
		FROM users
		ORDER BY email
	`).Rows()
	if err != nil {
		return nil, errs.WrapDeadline("list users", err)
	}
	defer rows.Close()

	users := make([]UserView, 0)
	for rows.Next() {
		var (
			view        UserView
			id          uuid.UUID
			shipmentIDs pq.StringArray
		)

		if err = rows.Scan(&id, &view.Email, &view.IsAdmin, &shipmentIDs, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		view.ShipmentCount = len(shipmentIDs)
		users = append(users, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.WrapDeadline("list users", err)
	}

	return users, nil
}
