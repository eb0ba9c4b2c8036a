// Package main runs the enum mapping pitfall from the README against real
// data and prints what the default configuration silently does to it.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"enum-pitfall/automap"
	"enum-pitfall/store"
	"enum-pitfall/warehouse"
)

func main() {
	cfg := automap.NewConfig()
	cfg.CreateMap(store.Order{}, warehouse.Order{})
	cfg.CreateMap(store.Payment{}, warehouse.Payment{})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "validate:", err)
		os.Exit(1)
	}

	fmt.Println("default configuration validates cleanly")
	fmt.Println()

	order := store.Order{
		Number:  "A-1001",
		Status:  store.StatusPending,
		History: []store.OrderStatus{store.StatusPending, store.StatusPaid},
	}
	payment := store.Payment{Reference: "P-1", Method: store.MethodCrypto}

	var (
		gotOrder   warehouse.Order
		gotPayment warehouse.Payment
	)

	m := cfg.Mapper()
	if err := m.Map(&gotOrder, order); err != nil {
		fmt.Fprintln(os.Stderr, "map order:", err)
		os.Exit(1)
	}

	if err := m.Map(&gotPayment, payment); err != nil {
		fmt.Fprintln(os.Stderr, "map payment:", err)
		os.Exit(1)
	}

	fmt.Printf("store order status:     %s (value %d)\n", order.Status, order.Status)
	fmt.Printf("warehouse order status: %s (value %d)\n", gotOrder.Status, gotOrder.Status)
	fmt.Printf("store payment method:     %s\n", payment.Method)
	fmt.Printf("warehouse payment method: %s\n", gotPayment.Method)
	fmt.Println()

	spew.Dump(gotOrder)
	spew.Dump(gotPayment)

	// The same configuration with the guard rail in place.
	strict := automap.NewConfig()
	strict.CreateMap(store.Order{}, warehouse.Order{})
	strict.CreateMap(store.Payment{}, warehouse.Payment{})
	strict.AddValidator(automap.RequireExplicitEnumMaps)

	fmt.Println("with RequireExplicitEnumMaps the same setup fails loudly:")
	fmt.Println()
	fmt.Println(strict.Validate())
}
