package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/application/integrity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateShipmentCommandHandler prices and persists a shipment, then links it
// into the company and owner lists.
type CreateShipmentCommandHandler struct {
	shipments ports.ShipmentRepository
	companies ports.CompanyRepository
	pricer    Pricer
	linker    ShipmentLinker
	logger    *slog.Logger
}

func NewCreateShipmentCommandHandler(
	store ports.Store,
	pricer Pricer,
	linker ShipmentLinker,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		shipments: store.ShipmentRepository(),
		companies: store.CompanyRepository(),
		pricer:    pricer,
		linker:    linker,
		logger:    logger.With("component", "CreateShipmentCommandHandler"),
	}
}

// Handle returns the stored shipment. Once the shipment row is written the
// command succeeds even if a back-reference list could not be updated.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := identity.RequireAuthenticated(cmd.Caller()); err != nil {
		return nil, err
	}

	price, err := h.pricer.Price(cmd.Weight())
	if err != nil {
		return nil, err
	}

	if _, err = h.companies.Get(ctx, cmd.CompanyID()); err != nil {
		return nil, errs.WrapDeadline("create shipment", err)
	}

	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		cmd.Caller().UserID,
		cmd.CompanyID(),
		cmd.Destination(),
		cmd.Weight(),
		price,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.shipments.Add(ctx, s); err != nil {
		return nil, errs.WrapDeadline("create shipment", err)
	}

	if err = h.linker.LinkCreated(ctx, s); err != nil {
		if !integrity.IsPartial(err) {
			return nil, err
		}
		h.logger.WarnContext(ctx, "shipment created with stale back-references",
			"shipment_id", s.ID().String(),
			"error", err,
		)
	}

	return s, nil
}
