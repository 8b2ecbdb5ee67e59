package kernel_test

import (
	"encoding/json"
	"testing"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_NilIsRejected(t *testing.T) {
	tests := []struct {
		name  string
		build func() (kernel.UUID, error)
	}{
		{"from string", func() (kernel.UUID, error) {
			return kernel.UUIDFromString(uuid.Nil.String())
		}},
		{"from bytes", func() (kernel.UUID, error) {
			return kernel.UUIDFromBytes(uuid.Nil[:])
		}},
	}

	for _, tt := range tests {
		t.Run("should reject nil uuid "+tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		})
	}

	t.Run("should report zero value as not constructed", func(t *testing.T) {
		assert.ErrorIs(t, kernel.UUID{}.Validate(), kernel.ErrUUIDIsNotConstructed)
		assert.NoError(t, kernel.NewUUID().Validate())
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("should survive a trip through the wire type", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		back, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, id.IsEqual(back))
	})

	t.Run("should reject a short slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUID_Text(t *testing.T) {
	t.Run("should parse its own string form", func(t *testing.T) {
		id := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
		assert.False(t, id.IsEqual(kernel.NewUUID()))
	})

	t.Run("should round trip through JSON", func(t *testing.T) {
		type payload struct {
			ShipmentID kernel.UUID `json:"shipmentId"`
		}
		original := payload{ShipmentID: kernel.NewUUID()}

		data, err := json.Marshal(original)
		require.NoError(t, err)
		assert.JSONEq(t, `{"shipmentId":"`+original.ShipmentID.String()+`"}`, string(data))

		var decoded payload
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, original.ShipmentID.IsEqual(decoded.ShipmentID))
	})

	t.Run("should reject malformed text", func(t *testing.T) {
		var id kernel.UUID

		err := id.UnmarshalText([]byte("not-a-uuid"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}
