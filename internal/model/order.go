package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item kinds as recorded on receipts and in the order archive.
const (
	KindSandwich = "sandwich"
	KindDrink    = "drink"
	KindChips    = "chips"
	KindOther    = "other"
)

const receiptRule = "-----------------"

// Order is the customer's in-progress order.
type Order struct {
	ID        uuid.UUID
	CreatedAt time.Time
	items     []MenuItem
}

// NewOrder starts an empty order.
func NewOrder() *Order {
	return &Order{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}
}

// Add appends an item to the order.
func (o *Order) Add(item MenuItem) {
	if item == nil {
		return
	}
	o.items = append(o.items, item)
}

// Remove removes the first occurrence of item. Items are matched by identity.
func (o *Order) Remove(item MenuItem) bool {
	for i, it := range o.items {
		if it == item {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAt removes the item at index i and returns it.
func (o *Order) RemoveAt(i int) (MenuItem, error) {
	if i < 0 || i >= len(o.items) {
		return nil, fmt.Errorf("item %d: %w", i+1, ErrItemNotFound)
	}
	item := o.items[i]
	o.items = append(o.items[:i], o.items[i+1:]...)
	return item, nil
}

// Items returns a copy of the item list in the order added.
func (o *Order) Items() []MenuItem {
	out := make([]MenuItem, len(o.items))
	copy(out, o.items)
	return out
}

// Len returns the number of items.
func (o *Order) Len() int {
	return len(o.items)
}

// IsEmpty reports whether the order has no items.
func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

// Sandwiches returns the sandwiches on the order in the order added.
func (o *Order) Sandwiches() []*Sandwich {
	var out []*Sandwich
	for _, it := range o.items {
		if s, ok := it.(*Sandwich); ok {
			out = append(out, s)
		}
	}
	return out
}

// Clear removes every item.
func (o *Order) Clear() {
	o.items = nil
}

// Reset clears the order and gives it a fresh identity.
func (o *Order) Reset() {
	o.items = nil
	o.ID = uuid.New()
	o.CreatedAt = time.Now()
}

// Total returns the sum of item prices.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.items {
		total = total.Add(it.Price())
	}
	return total
}

// Details renders the line-itemized order summary.
func (o *Order) Details() string {
	var b strings.Builder

	b.WriteString("Order Details:\n")
	b.WriteString(receiptRule + "\n")
	for _, it := range o.items {
		writeItem(&b, it)
	}
	b.WriteString(receiptRule + "\n")
	fmt.Fprintf(&b, "Total: %s\n", FormatPrice(o.Total()))

	return b.String()
}

func writeItem(b *strings.Builder, item MenuItem) {
	fmt.Fprintf(b, "%s - %s\n", item.Name(), FormatPrice(item.Price()))
	for _, line := range itemDetails(item) {
		fmt.Fprintf(b, "  %s\n", line)
	}
}

// itemDetails lists the toasted marker and toppings of a sandwich.
func itemDetails(item MenuItem) []string {
	s, ok := item.(*Sandwich)
	if !ok {
		return nil
	}

	var lines []string
	if s.Toasted() {
		lines = append(lines, "* Toasted")
	}
	for _, t := range s.toppings {
		if t.Extra {
			lines = append(lines, "+ Extra "+t.Topping.Name)
		} else {
			lines = append(lines, "+ "+t.Topping.Name)
		}
	}
	return lines
}

// ItemKind classifies a menu item for receipts and the archive.
func ItemKind(item MenuItem) string {
	switch item.(type) {
	case *Sandwich:
		return KindSandwich
	case *Drink:
		return KindDrink
	case *Chips:
		return KindChips
	default:
		return KindOther
	}
}

// FormatPrice renders an amount as $7.00.
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
