package shipment_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []shipment.Status{
	shipment.Preparing,
	shipment.Shipped,
	shipment.Delivered,
	shipment.Cancelled,
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every known label", func(t *testing.T) {
		for _, status := range allStatuses {
			parsed, err := shipment.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown labels", func(t *testing.T) {
		for _, label := range []string{"", "unknown", "lost", "Shipped", " shipped", "returned"} {
			t.Run(fmt.Sprintf("label %q", label), func(t *testing.T) {
				_, err := shipment.ParseStatus(label)

				require.ErrorIs(t, err, shipment.ErrInvalidStatusValue)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses {
		require.NoError(t, status.Validate())
	}

	for _, status := range []shipment.Status{shipment.Unknown, shipment.Status(-1), shipment.Status(5)} {
		err := status.Validate()

		require.ErrorIs(t, err, shipment.ErrInvalidStatusValue)
		assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[shipment.Status][]shipment.Status{
		shipment.Preparing: {shipment.Shipped, shipment.Cancelled},
		shipment.Shipped:   {shipment.Delivered, shipment.Cancelled},
		shipment.Delivered: {},
		shipment.Cancelled: {},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			name := fmt.Sprintf("%s -> %s", from, to)
			t.Run(name, func(t *testing.T) {
				next, err := from.TransitionTo(to)

				if contains(allowed[from], to) {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					assert.True(t, from.CanTransitionTo(to))
					return
				}

				require.ErrorIs(t, err, shipment.ErrIllegalTransition)
				assert.Equal(t, shipment.Unknown, next)
				assert.False(t, from.CanTransitionTo(to))
			})
		}
	}
}

func TestStatus_TransitionTo_SameStatusIsIllegal(t *testing.T) {
	for _, status := range allStatuses {
		_, err := status.TransitionTo(status)

		require.ErrorIs(t, err, shipment.ErrIllegalTransition)
	}
}

func TestStatus_TransitionTo_UnknownTarget(t *testing.T) {
	_, err := shipment.Preparing.TransitionTo(shipment.Unknown)

	require.ErrorIs(t, err, shipment.ErrInvalidStatusValue)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, shipment.Preparing.IsTerminal())
	assert.False(t, shipment.Shipped.IsTerminal())
	assert.True(t, shipment.Delivered.IsTerminal())
	assert.True(t, shipment.Cancelled.IsTerminal())
	assert.Empty(t, shipment.Delivered.AllowedTransitions())
}

func TestStatus_TextMarshaling(t *testing.T) {
	text, err := shipment.Shipped.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "shipped", string(text))

	var s shipment.Status
	require.NoError(t, s.UnmarshalText([]byte("cancelled")))
	assert.Equal(t, shipment.Cancelled, s)

	_, err = shipment.Unknown.MarshalText()
	require.Error(t, err)
}

func contains(list []shipment.Status, s shipment.Status) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}
