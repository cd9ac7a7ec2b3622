package shipment_test

import (
	"fmt"
	"testing"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(shipment.Unknown))
		assert.Equal(t, 1, int(shipment.Pending))
		assert.Equal(t, 2, int(shipment.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []shipment.Status{
			shipment.Pending,
			shipment.Delivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := shipment.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []shipment.Status{
			shipment.Status(-1),
			shipment.Status(3),
			shipment.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return status names", func(t *testing.T) {
		assert.Equal(t, "Unknown", shipment.Unknown.String())
		assert.Equal(t, "Pending", shipment.Pending.String())
		assert.Equal(t, "Delivered", shipment.Delivered.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", shipment.Status(42).String())
		assert.Equal(t, "Unknown", shipment.Status(-1).String())
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should transition Pending to Delivered", func(t *testing.T) {
		newStatus, err := shipment.Pending.Deliver()

		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, newStatus)
	})

	t.Run("should reject repeat delivery with ErrAlreadyDelivered", func(t *testing.T) {
		_, err := shipment.Delivered.Deliver()

		require.Error(t, err)
		require.ErrorIs(t, err, shipment.ErrAlreadyDelivered)
	})

	t.Run("should reject delivery from Unknown status", func(t *testing.T) {
		_, err := shipment.Unknown.Deliver()

		require.Error(t, err)
		assert.NotErrorIs(t, err, shipment.ErrAlreadyDelivered)
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestStatus_ValidateCanHaveDeliveryRecord(t *testing.T) {
	t.Run("Pending must not have a delivery record", func(t *testing.T) {
		require.NoError(t, shipment.Pending.ValidateCanHaveDeliveryRecord(false))
		require.Error(t, shipment.Pending.ValidateCanHaveDeliveryRecord(true))
	})

	t.Run("Delivered must have a delivery record", func(t *testing.T) {
		require.NoError(t, shipment.Delivered.ValidateCanHaveDeliveryRecord(true))
		require.Error(t, shipment.Delivered.ValidateCanHaveDeliveryRecord(false))
	})
}
