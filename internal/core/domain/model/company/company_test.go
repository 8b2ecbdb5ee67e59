package company_test

import (
	"strings"
	"testing"
	"time"

	"logistics/internal/core/domain/model/company"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	t.Run("should trim the name", func(t *testing.T) {
		c, err := company.NewCompany(kernel.NewUUID(), "  Northwind Freight ", time.Now())

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Northwind Freight", c.Name())
		assert.Empty(t, c.ShipmentIDs())
	})

	t.Run("should require a name", func(t *testing.T) {
		_, err := company.NewCompany(kernel.NewUUID(), "\t", time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should bound the name length", func(t *testing.T) {
		_, err := company.NewCompany(kernel.NewUUID(), strings.Repeat("n", company.MaxNameLength+1), time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should require an id", func(t *testing.T) {
		_, err := company.NewCompany(kernel.UUID{}, "Acme", time.Now())

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestCompany_ZeroValueIsNotConstructed(t *testing.T) {
	var c company.Company

	require.ErrorIs(t, c.Validate(), company.ErrCompanyIsNotConstructed)
}
