package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/identity"
	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func clientCaller() identity.Caller {
	return identity.Caller{UserID: kernel.NewUUID()}
}

func adminCaller() identity.Caller {
	return identity.Caller{UserID: kernel.NewUUID(), IsAdmin: true}
}

func newTestCompany(t *testing.T) *company.Company {
	t.Helper()
	c, err := company.NewCompany(kernel.NewUUID(), "Northwind Freight", time.Now())
	require.NoError(t, err)
	return c
}

func newTestUser(t *testing.T, email string, isAdmin bool) *user.User {
	t.Helper()
	u, err := user.RestoreUser(kernel.NewUUID(), email, "hash", isAdmin, nil, time.Now())
	require.NoError(t, err)
	return u
}

func newTestShipment(t *testing.T, status shipment.Status) *shipment.Shipment {
	t.Helper()
	dest, err := kernel.NewCustomDestination("1 Harbour Road")
	require.NoError(t, err)
	s, err := shipment.RestoreShipment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), dest, 3, 3, status, time.Now())
	require.NoError(t, err)
	return s
}
