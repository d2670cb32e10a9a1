package printing_test

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"object-printer/printing"
	"object-printer/store"
)

func Example() {
	address := "Baker Street 221b"
	customer := &store.Customer{
		ID:       uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2"),
		Email:    "alex@example.com",
		FullName: "Alexander Petrov",
		Address:  &address,
		IsActive: true,
	}
	pen := &store.Product{
		ID:        uuid.New(),
		SKU:       "PEN-1",
		Name:      "Fountain pen",
		Price:     decimal.RequireFromString("12.5"),
		CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	order := &store.Order{
		ID:       uuid.New(),
		Customer: customer,
		Status:   store.StatusPaid,
		Items:    []store.OrderItem{{Product: pen, Quantity: 2}, {Product: pen, Quantity: 1}},
		Labels:   map[string]string{"gift": "yes"},
	}
	order.Previous = order

	printer := printing.For[*store.Order]().
		Excluding(printing.Type[uuid.UUID](), printing.Type[time.Time]()).
		Printing(
			printing.Type[decimal.Decimal]().Culture(language.German),
			printing.Field(func(c *store.Customer) *string { return &c.FullName }).TrimmedToLength(9),
			printing.Field(func(c *store.Customer) **string { return &c.Address }).Using(func(*string) string {
				return "<hidden>"
			}),
		).
		MustBuild()

	fmt.Print(printer.PrintToString(order))
	// Output:
	// Order
	// 	Customer = Customer
	// 		Email = alex@example.com
	// 		FullName = Alexander
	// 		Address = <hidden>
	// 		IsActive = true
	// 	Status = PAID
	// 	Items = []store.OrderItem
	// 		[0] = OrderItem
	// 			Product = Product
	// 				SKU = PEN-1
	// 				Name = Fountain pen
	// 				Price = 12,5
	// 			Quantity = 2
	// 		[1] = OrderItem
	// 			Product = <Cyclic reference Product>
	// 			Quantity = 1
	// 	Labels = map[string]string
	// 		Key = gift
	// 		Value = yes
	// 	Previous = <Cyclic reference Order>
}

func ExampleSprint() {
	fmt.Print(printing.Sprint(map[string]int{"b": 2, "a": 1}))
	// Output:
	// map[string]int
	// 	Key = a
	// 	Value = 1
	// 	Key = b
	// 	Value = 2
}
