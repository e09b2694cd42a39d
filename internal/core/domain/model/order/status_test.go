package order_test

import (
	"fmt"
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should keep workflow order", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, []order.Status{
			order.Pending, order.Confirmed, order.Preparation, order.Dispatched, order.Delivered,
		}, order.AllStatuses())
	})

	t.Run("should expose wire codes and labels", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "preparation", order.Preparation.String())
		assert.Equal(t, "In Preparation", order.Preparation.Label())
		assert.Equal(t, "unknown", order.Status(42).String())
		assert.Equal(t, "Unknown", order.Unknown.Label())
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.AllStatuses() {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every code", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			parsed, err := order.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should ignore case and whitespace", func(t *testing.T) {
		parsed, err := order.ParseStatus("  Dispatched ")
		require.NoError(t, err)
		assert.Equal(t, order.Dispatched, parsed)
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := order.ParseStatus("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown codes", func(t *testing.T) {
		_, err := order.ParseStatus("cancelled")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"cancelled" is not a known status`)
	})
}

func TestStatus_Transitions(t *testing.T) {
	testCases := []struct {
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{order.Pending, order.Confirmed, true},
		{order.Confirmed, order.Preparation, true},
		{order.Preparation, order.Dispatched, true},
		{order.Dispatched, order.Delivered, true},
		{order.Pending, order.Preparation, false},
		{order.Pending, order.Pending, false},
		{order.Dispatched, order.Confirmed, false},
		{order.Delivered, order.Pending, false},
		{order.Unknown, order.Pending, false},
		{order.Pending, order.Unknown, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_to_%s", tc.from, tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))

			got, err := tc.from.TransitionTo(tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, got)
			} else {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Equal(t, order.Unknown, got)
			}
		})
	}

	t.Run("delivered is final", func(t *testing.T) {
		_, ok := order.Delivered.Next()
		assert.False(t, ok)
		assert.True(t, order.Delivered.IsFinal())
	})
}
