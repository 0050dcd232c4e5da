package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fadhlanhapp/sharetab-checkout/models"
)

// runDemo totals a fixed cart for a member holding a coupon and prints the result
func runDemo(w io.Writer, policy models.Policy) {
	cart := models.NewCartWithPolicy(policy)

	laptop := models.NewLineItem("Laptop", 1000, 1)
	laptop.SetCategory("electronics")

	cart.AddItem(models.NewLineItem("Apple", 1.5, 10))
	cart.AddItem(models.NewLineItem("Banana", 0.5, 5))
	cart.AddItem(laptop)

	total, err := cart.Total(true, true)
	var calcErr *models.CalculationError
	if errors.As(err, &calcErr) {
		fmt.Fprintln(w, "Error in calculation!")
		return
	}

	fmt.Fprintf(w, "The total price is: %s%d\n", policy.CurrencySymbol, int(total))
}
