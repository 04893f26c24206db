package service

import (
	"context"

	"deli-cious/internal/menu"
	"deli-cious/internal/model"
)

// ToppingResult describes how a topping request was applied to a sandwich.
type ToppingResult struct {
	Topping model.Topping
	// Extra reports whether an extra portion was actually added.
	Extra bool
	// NotExtraCapable is set when extra was requested for a topping that has no extra portion.
	NotExtraCapable bool
	// LimitReached is set when the extra cap for the topping was already used up.
	LimitReached bool
	// Limit is the extra cap that applied, 0 for toppings without extras.
	Limit int
}

// CheckoutResult is returned after a successful payment.
type CheckoutResult struct {
	Receipt  *model.Receipt
	Location string
}

// OrderService defines operations on the customer's current order.
type OrderService interface {
	// Order returns the current order.
	Order() *model.Order

	// Menu returns the signature sandwich menu.
	Menu() *menu.Menu

	// NewSandwich validates size and bread input and returns a sandwich that
	// is not yet on the order.
	NewSandwich(sizeInput, breadInput string) (*model.Sandwich, error)

	// LookupTopping returns the catalog topping number if it belongs to category.
	LookupTopping(category model.Category, number int) (model.Topping, error)

	// AddTopping adds the catalog topping number to the sandwich. When an extra
	// portion would exceed the cap a regular portion is added and
	// ErrExtraLimitReached is returned alongside the result.
	AddTopping(sandwich *model.Sandwich, number int, extra bool) (ToppingResult, error)

	// RemoveTopping removes the topping portion at a 0-based index.
	RemoveTopping(sandwich *model.Sandwich, index int) (model.ToppingOrder, error)

	// AddItem places an item on the order.
	AddItem(item model.MenuItem)

	// AddSignature places a fresh copy of the signature at a 1-based menu position on the order.
	AddSignature(position int) (*model.Sandwich, error)

	// AddDrink validates the size input and places the drink on the order.
	AddDrink(sizeInput, flavor string) (*model.Drink, error)

	// AddChips places a bag of chips on the order.
	AddChips(kind string) *model.Chips

	// RemoveItem removes the item at a 0-based index.
	RemoveItem(index int) (model.MenuItem, error)

	// Cancel discards the order and starts a new one.
	Cancel()

	// Checkout takes payment, stores the receipt and starts a new order.
	Checkout(ctx context.Context, paymentMethod string) (*CheckoutResult, error)
}
