// Package store is a small order model used by the examples and tests of
// object-printer. It has everything a printer meets in practice: nested
// structs, shared pointers, slices, maps and final types such as
// decimal.Decimal and time.Time.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an item available for sale.
type Product struct {
	ID        uuid.UUID
	SKU       string
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
}

// Customer places orders.
type Customer struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Address  *string
	IsActive bool
}

// Order is a purchase made by a customer. Previous links to an earlier order
// and may close a cycle.
type Order struct {
	ID       uuid.UUID
	Customer *Customer
	Status   OrderStatus
	Items    []OrderItem
	Labels   map[string]string
	Previous *Order
}

// OrderItem snapshots a product at the time of purchase.
type OrderItem struct {
	Product  *Product
	Quantity int
}

// Total returns the sum of all item prices.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		if item.Product == nil {
			continue
		}

		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
