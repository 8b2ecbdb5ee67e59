// Package queries contains read-only operations. Handlers bypass the
// aggregates and read the tables directly with SQL, joining in the
// display data each listing needs.
package queries

import (
	"database/sql"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentView is a shipment enriched for display.
type ShipmentView struct {
	ID        kernel.UUID
	CreatedBy kernel.UUID
	// OwnerEmail is empty when the creating account has been deleted.
	OwnerEmail  string
	CompanyID   kernel.UUID
	CompanyName string
	Destination kernel.Destination
	// DestinationName is the company name for company destinations and the
	// address otherwise.
	DestinationName string
	Weight          float64
	Price           float64
	Status          shipment.Status
	CreatedAt       time.Time
}

const shipmentViewSelect = `
	SELECT
		s.id,
		s.created_by,
		COALESCE(u.email, ''),
		s.company_id,
		COALESCE(c.name, ''),
		s.destination_company_id,
		COALESCE(dc.name, ''),
		s.destination_address,
		s.weight,
		s.price,
		s.status,
		s.created_at
	FROM shipments s
	LEFT JOIN users u ON u.id = s.created_by
	LEFT JOIN companies c ON c.id = s.company_id
	LEFT JOIN companies dc ON dc.id = s.destination_company_id`

const shipmentViewOrder = `
	ORDER BY s.created_at DESC, s.id`

func scanShipmentViews(rows *sql.Rows) ([]ShipmentView, error) {
	views := make([]ShipmentView, 0)

	for rows.Next() {
		var (
			view                         ShipmentView
			id, createdBy, companyID     uuid.UUID
			destCompanyID                uuid.NullUUID
			destCompanyName, destAddress string
			status                       int
		)

		if err := rows.Scan(
			&id,
			&createdBy,
			&view.OwnerEmail,
			&companyID,
			&view.CompanyName,
			&destCompanyID,
			&destCompanyName,
			&destAddress,
			&view.Weight,
			&view.Price,
			&status,
			&view.CreatedAt,
		); err != nil {
			return nil, err
		}

		var err error
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
			return nil, err
		}
		if view.CompanyID, err = kernel.UUIDFromBytes(companyID[:]); err != nil {
			return nil, err
		}

		var destID *kernel.UUID
		if destCompanyID.Valid {
			parsed, idErr := kernel.UUIDFromBytes(destCompanyID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			destID = &parsed
		}
		if view.Destination, err = kernel.RestoreDestination(destID, destAddress); err != nil {
			return nil, err
		}

		view.DestinationName = destAddress
		if destID != nil {
			view.DestinationName = destCompanyName
		}

		view.Status = shipment.Status(status)
		if err = view.Status.Validate(); err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
