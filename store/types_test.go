package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_Total(t *testing.T) {
	t.Parallel()

	pen := &Product{Price: decimal.RequireFromString("12.5")}
	ink := &Product{Price: decimal.RequireFromString("0.99")}

	order := &Order{Items: []OrderItem{
		{Product: pen, Quantity: 2},
		{Product: ink, Quantity: 3},
		{Quantity: 5},
	}}

	assert.True(t, decimal.RequireFromString("27.97").Equal(order.Total()), order.Total().String())
	assert.True(t, (&Order{}).Total().IsZero())
}
