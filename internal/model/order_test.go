package model

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumPrices(items []MenuItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price())
	}
	return total
}

func TestOrder_TotalMatchesItemsAfterMutations(t *testing.T) {
	order := NewOrder()

	sandwich, err := NewSandwich("12", "wheat")
	require.NoError(t, err)
	sandwich.AddTopping(mustTopping(t, 4), true)

	drink, err := NewDrink("lg", "Cola")
	require.NoError(t, err)
	chips := NewChips("BBQ")

	order.Add(sandwich)
	order.Add(drink)
	order.Add(chips)
	assert.True(t, sumPrices(order.Items()).Equal(order.Total()))
	assert.True(t, decimal.RequireFromString("17.50").Equal(order.Total()), "got %s", order.Total())

	assert.True(t, order.Remove(drink))
	assert.False(t, order.Remove(drink))
	assert.True(t, sumPrices(order.Items()).Equal(order.Total()))

	removed, err := order.RemoveAt(0)
	require.NoError(t, err)
	assert.Same(t, sandwich, removed)
	assert.True(t, ChipsPrice.Equal(order.Total()))

	_, err = order.RemoveAt(3)
	assert.ErrorIs(t, err, ErrItemNotFound)

	order.Clear()
	assert.True(t, order.IsEmpty())
	assert.True(t, decimal.Zero.Equal(order.Total()))
}

func TestOrder_Reset(t *testing.T) {
	order := NewOrder()
	id := order.ID
	order.Add(NewChips("Plain"))

	order.Reset()

	assert.True(t, order.IsEmpty())
	assert.NotEqual(t, id, order.ID)
}

func TestOrder_Details(t *testing.T) {
	order := NewOrder()

	sandwich, err := NewSandwich("8", "white")
	require.NoError(t, err)
	sandwich.SetToasted(true)
	sandwich.AddTopping(mustTopping(t, 1), false)
	sandwich.AddTopping(mustTopping(t, 1), true)
	sandwich.AddTopping(mustTopping(t, 12), false)
	order.Add(sandwich)

	drink, err := NewDrink("small", "Lemonade")
	require.NoError(t, err)
	order.Add(drink)

	expected := strings.Join([]string{
		"Order Details:",
		"-----------------",
		"8\" White sandwich - $12.00",
		"  * Toasted",
		"  + Steak",
		"  + Extra Steak",
		"  + Peppers",
		"Lemonade Small - $2.00",
		"-----------------",
		"Total: $14.00",
		"",
	}, "\n")

	assert.Equal(t, expected, order.Details())
}

func TestNewReceipt(t *testing.T) {
	order := NewOrder()
	sandwich, err := NewSandwich("4", "rye")
	require.NoError(t, err)
	order.Add(sandwich)
	order.Add(NewChips(""))

	issuedAt := time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)
	receipt := NewReceipt(order, " CASH ", issuedAt)

	assert.Equal(t, order.ID, receipt.OrderID)
	assert.Equal(t, PaymentCash, receipt.PaymentMethod)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, KindSandwich, receipt.Items[0].Kind)
	assert.Equal(t, KindChips, receipt.Items[1].Kind)
	assert.Equal(t, "Chips", receipt.Items[1].Name)
	assert.Equal(t, 2, receipt.Items[1].Position)
	assert.True(t, decimal.RequireFromString("7.00").Equal(receipt.Total))

	assert.Contains(t, receipt.Text, "Order #"+order.ID.String())
	assert.Contains(t, receipt.Text, "Date: 2026-10-14 15:30:00")
	assert.Contains(t, receipt.Text, order.Details())
	assert.Contains(t, receipt.Text, "Paid: Cash")

	assert.Equal(t, "20261014-153000-"+order.ID.String()[:8]+".txt", receipt.FileName())
}

func TestDrink(t *testing.T) {
	tests := []struct {
		input    string
		name     string
		expected string
	}{
		{input: "s", name: "Cola Small", expected: "2.00"},
		{input: " Medi ", name: "Cola Medium", expected: "2.50"},
		{input: "LARG", name: "Cola Large", expected: "3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := NewDrink(tt.input, "Cola")
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(d.Price()))
		})
	}

	_, err := NewDrink("venti", "Cola")
	assert.ErrorIs(t, err, ErrInvalidDrinkSize)
}

func TestDomainError_Is(t *testing.T) {
	custom := NewDomainError(ErrCodeInvalidSize, "size 6 is not on the menu")

	assert.True(t, errors.Is(custom, ErrInvalidSize))
	assert.False(t, errors.Is(custom, ErrInvalidBreadType))

	var domainErr *DomainError
	require.True(t, errors.As(custom, &domainErr))
	assert.Equal(t, ErrCodeInvalidSize, domainErr.Code)
}
