package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateCompanyCommandIsNotConstructed = errors.New(
	"CreateCompanyCommand must be created via NewCreateCompanyCommand constructor",
)

// CreateCompanyCommand registers a company shipments can be routed through.
type CreateCompanyCommand struct {
	caller identity.Caller
	name   string

	guard guard.ConstructorGuard
}

func NewCreateCompanyCommand(caller identity.Caller, name string) (CreateCompanyCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CreateCompanyCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateCompanyCommand{caller: caller, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCompanyCommand) Validate() error {
	return c.guard.Validate(ErrCreateCompanyCommandIsNotConstructed)
}

type CreateCompanyCommandHandler struct {
	companies ports.CompanyRepository
}

func NewCreateCompanyCommandHandler(store ports.Store) CreateCompanyCommandHandler {
	return CreateCompanyCommandHandler{companies: store.CompanyRepository()}
}

// Handle stores the company. A duplicate name surfaces as errs.ErrConflict.
func (h CreateCompanyCommandHandler) Handle(ctx context.Context, cmd CreateCompanyCommand) (*company.Company, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := identity.RequireAdministrator(cmd.caller); err != nil {
		return nil, err
	}

	c, err := company.NewCompany(kernel.NewUUID(), cmd.name, time.Now())
	if err != nil {
		return nil, err
	}

	if err = h.companies.Add(ctx, c); err != nil {
		return nil, errs.WrapDeadline("create company", err)
	}

	return c, nil
}
