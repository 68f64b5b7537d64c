package order_test

import (
	"testing"
	"time"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func mustLine(t *testing.T, quantity, unitPrice string) order.Line {
	t.Helper()
	line, err := order.NewLine(
		kernel.NewUUID(),
		decimal.RequireFromString(quantity),
		decimal.RequireFromString(unitPrice),
	)
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("valid_line", func(t *testing.T) {
		productID := kernel.NewUUID()

		line, err := order.NewLine(productID, decimal.NewFromInt(3), decimal.RequireFromString("10.50"))

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.ProductID().IsEqual(productID))
		assert.True(t, line.Subtotal().Equal(decimal.RequireFromString("31.50")))
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), decimal.Zero, decimal.NewFromInt(10))
		require.Error(t, err)

		_, err = order.NewLine(kernel.NewUUID(), decimal.NewFromInt(-1), decimal.NewFromInt(10))
		require.Error(t, err)
	})

	t.Run("rejects_non_positive_price", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), decimal.NewFromInt(1), decimal.Zero)
		require.Error(t, err)
	})

	t.Run("rejects_invalid_product_reference", func(t *testing.T) {
		_, err := order.NewLine(kernel.UUID{}, decimal.NewFromInt(1), decimal.NewFromInt(10))
		require.Error(t, err)
	})

	t.Run("zero_value_line_has_zero_subtotal", func(t *testing.T) {
		var line order.Line

		require.Error(t, line.Validate())
		assert.True(t, line.Subtotal().IsZero())
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("valid_order_starts_pending", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()

		o, err := order.NewOrder(id, customerID, testCreatedAt, decimal.Zero)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.NoteIssued())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, testCreatedAt, o.CreatedAt())
		assert.Empty(t, o.Lines())
	})

	t.Run("requires_customer_reference", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, testCreatedAt, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("requires_creation_timestamp", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Time{}, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("zero_value_order_is_not_constructed", func(t *testing.T) {
		var o order.Order
		require.Error(t, o.Validate())
	})
}

func TestOrder_ReplaceLines(t *testing.T) {
	t.Run("total_is_half_up_rounded_sum_of_subtotals", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testCreatedAt, decimal.Zero)
		require.NoError(t, err)

		// 3 × 10.005 + 1 × 2.00 = 32.015 → 32.02 half-up
		err = o.ReplaceLines([]order.Line{
			mustLine(t, "3", "10.005"),
			mustLine(t, "1", "2.00"),
		})

		require.NoError(t, err)
		assert.True(t, o.Total().Equal(decimal.RequireFromString("32.02")),
			"total = %s, want 32.02", o.Total())
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("overwrites_caller_supplied_total", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testCreatedAt,
			decimal.RequireFromString("999.99"))
		require.NoError(t, err)

		require.NoError(t, o.ReplaceLines([]order.Line{mustLine(t, "2", "5")}))

		assert.True(t, o.Total().Equal(decimal.NewFromInt(10)))
	})

	t.Run("caller_total_survives_without_lines", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testCreatedAt,
			decimal.RequireFromString("150.00"))
		require.NoError(t, err)

		assert.True(t, o.Total().Equal(decimal.RequireFromString("150.00")))
	})

	t.Run("rejects_unconstructed_lines", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testCreatedAt, decimal.Zero)
		require.NoError(t, err)

		err = o.ReplaceLines([]order.Line{{}})
		require.Error(t, err)
	})

	t.Run("returned_lines_are_a_copy", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testCreatedAt, decimal.Zero)
		require.NoError(t, err)
		require.NoError(t, o.ReplaceLines([]order.Line{mustLine(t, "1", "1")}))

		lines := o.Lines()
		lines[0] = order.Line{}

		require.NoError(t, o.Lines()[0].Validate())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testCreatedAt, decimal.Zero)
		require.NoError(t, err)
		return o
	}

	t.Run("walks_the_full_lifecycle", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.InPreparation))
		require.NoError(t, o.ChangeStatus(order.Shipped))
		require.NoError(t, o.ChangeStatus(order.Delivered))

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("delivered_flips_note_issued_flag", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.InPreparation))
		require.NoError(t, o.ChangeStatus(order.Shipped))
		assert.False(t, o.NoteIssued())

		require.NoError(t, o.ChangeStatus(order.Delivered))

		assert.True(t, o.NoteIssued())
	})

	t.Run("rejects_forbidden_transition", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Delivered)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("same_status_is_a_noop", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Pending))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cancellation_from_pending", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Cancelled))
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("reconstructs_full_aggregate", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		lines := []order.Line{mustLine(t, "2", "3.50")}

		o, err := order.RestoreOrder(id, customerID, testCreatedAt, order.Shipped, true,
			lines, decimal.RequireFromString("7.00"))

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.True(t, o.NoteIssued())
		assert.True(t, o.Total().Equal(decimal.RequireFromString("7.00")))
		assert.Len(t, o.Lines(), 1)
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), testCreatedAt,
			order.Unknown, false, nil, decimal.Zero)
		require.Error(t, err)
	})
}

func TestOrder_LinesTotal(t *testing.T) {
	t.Run("empty_order_totals_zero", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testCreatedAt, decimal.Zero)
		require.NoError(t, err)

		assert.True(t, o.LinesTotal().IsZero())
	})
}
