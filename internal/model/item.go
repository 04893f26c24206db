package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MenuItem is anything that can be placed on an order.
type MenuItem interface {
	Name() string
	Price() decimal.Decimal
}

// DrinkSize is a cup size.
type DrinkSize string

// Supported drink sizes.
const (
	DrinkSmall  DrinkSize = "Small"
	DrinkMedium DrinkSize = "Medium"
	DrinkLarge  DrinkSize = "Large"
)

// DrinkSizes lists the drink sizes in menu order.
var DrinkSizes = []DrinkSize{DrinkSmall, DrinkMedium, DrinkLarge}

var drinkSizeAliases = map[string]DrinkSize{
	"s": DrinkSmall, "sm": DrinkSmall, "sma": DrinkSmall, "smal": DrinkSmall, "small": DrinkSmall,
	"m": DrinkMedium, "med": DrinkMedium, "medi": DrinkMedium, "medium": DrinkMedium, "mid": DrinkMedium,
	"l": DrinkLarge, "lg": DrinkLarge, "lar": DrinkLarge, "larg": DrinkLarge, "large": DrinkLarge,
}

var drinkPrices = map[DrinkSize]decimal.Decimal{
	DrinkSmall:  decimal.RequireFromString("2.00"),
	DrinkMedium: decimal.RequireFromString("2.50"),
	DrinkLarge:  decimal.RequireFromString("3.00"),
}

// ChipsPrice is charged for every bag regardless of type.
var ChipsPrice = decimal.RequireFromString("1.50")

// ParseDrinkSize maps user input such as "lg" to a DrinkSize.
func ParseDrinkSize(input string) (DrinkSize, error) {
	size, ok := drinkSizeAliases[normalizeInput(input)]
	if !ok {
		return "", fmt.Errorf("invalid drink size '%s': %w", input, ErrInvalidDrinkSize)
	}
	return size, nil
}

// DrinkPrice returns the price of a cup size.
func DrinkPrice(size DrinkSize) decimal.Decimal {
	if price, ok := drinkPrices[size]; ok {
		return price
	}
	return drinkPrices[DrinkMedium]
}

// Drink is a fountain drink of one flavor.
type Drink struct {
	Flavor string
	Size   DrinkSize
}

// NewDrink validates the size input and returns the drink.
func NewDrink(sizeInput, flavor string) (*Drink, error) {
	size, err := ParseDrinkSize(sizeInput)
	if err != nil {
		return nil, err
	}
	return &Drink{Flavor: strings.TrimSpace(flavor), Size: size}, nil
}

// Name returns e.g. Cola Large.
func (d *Drink) Name() string {
	return strings.TrimSpace(d.Flavor + " " + string(d.Size))
}

// Price returns the price of the drink's cup size.
func (d *Drink) Price() decimal.Decimal {
	return DrinkPrice(d.Size)
}

// Chips is a bag of chips.
type Chips struct {
	Kind string
}

// NewChips returns a bag of the given kind.
func NewChips(kind string) *Chips {
	return &Chips{Kind: strings.TrimSpace(kind)}
}

// Name returns the chip kind, or "Chips" when none was given.
func (c *Chips) Name() string {
	if c.Kind == "" {
		return "Chips"
	}
	return c.Kind
}

// Price returns the fixed chips price.
func (c *Chips) Price() decimal.Decimal {
	return ChipsPrice
}
