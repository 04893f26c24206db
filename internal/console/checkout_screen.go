package console

import (
	"context"
	"errors"

	"deli-cious/internal/model"
)

// checkout reports whether the order was paid for.
func (a *App) checkout(ctx context.Context) (bool, error) {
	order := a.svc.Order()
	if order.IsEmpty() {
		a.term.Notice("Your order is empty. Cannot proceed to checkout.")
		return false, nil
	}

	a.term.Heading("--- Proceeding to Checkout ---")
	a.term.Printf("%s", order.Details())
	a.term.Printf("\nYour final total is: %s\n", model.FormatPrice(order.Total()))

	a.term.Heading("--- Payment ---")
	a.term.Println("Payment methods accepted: Cash (enter 'cash')")

	method, err := a.term.String(ctx, "Enter payment method: ")
	if err != nil {
		return false, err
	}

	result, err := a.svc.Checkout(ctx, method)
	switch {
	case errors.Is(err, model.ErrUnsupportedPayment):
		a.term.Error(err.Error())
	case err != nil:
		a.logger.Error().Err(err).Msg("checkout failed")
		a.term.Error("Sorry, we could not complete your order. Please try again.")
	default:
		a.term.Println("Payment received. Processing your order...")
		a.term.Println("Payment successful! Thank you for your order.")
		a.term.Printf("Receipt saved to %s\n", result.Location)
		a.term.Println("Order completed. Enjoy your meal!")
	}

	if _, err := a.term.String(ctx, "Press Enter to return to the menu..."); err != nil {
		return false, err
	}

	return result != nil, nil
}
