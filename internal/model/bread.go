package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Size is a sandwich length in inches.
type Size int

// Supported sandwich sizes.
const (
	SizeFour   Size = 4
	SizeEight  Size = 8
	SizeTwelve Size = 12
)

// Sizes lists the sandwich sizes in menu order.
var Sizes = []Size{SizeFour, SizeEight, SizeTwelve}

// String returns the size as shown on receipts, e.g. 8".
func (s Size) String() string {
	return fmt.Sprintf("%d\"", int(s))
}

// BreadType is one of the breads the shop bakes.
type BreadType string

// Supported bread types.
const (
	BreadWhite BreadType = "White"
	BreadWheat BreadType = "Wheat"
	BreadRye   BreadType = "Rye"
	BreadWrap  BreadType = "Wrap"
)

// BreadTypes lists the bread types in menu order.
var BreadTypes = []BreadType{BreadWhite, BreadWheat, BreadRye, BreadWrap}

var sizeAliases = map[string]Size{
	"4": SizeFour, "4\"": SizeFour, "4 inch": SizeFour, "four": SizeFour,
	"small": SizeFour, "s": SizeFour, "sm": SizeFour,

	"8": SizeEight, "8\"": SizeEight, "8 inch": SizeEight, "eight": SizeEight,
	"medium": SizeEight, "m": SizeEight, "med": SizeEight, "mid": SizeEight,

	"12": SizeTwelve, "12\"": SizeTwelve, "12 inch": SizeTwelve, "twelve": SizeTwelve,
	"large": SizeTwelve, "l": SizeTwelve, "lg": SizeTwelve,
}

var breadAliases = map[string]BreadType{
	"white": BreadWhite, "w": BreadWhite,
	"wheat": BreadWheat, "wh": BreadWheat, "whole wheat": BreadWheat,
	"rye": BreadRye, "r": BreadRye,
	"wrap": BreadWrap, "tortilla": BreadWrap,
}

var basePrices = map[Size]decimal.Decimal{
	SizeFour:   decimal.RequireFromString("5.50"),
	SizeEight:  decimal.RequireFromString("7.00"),
	SizeTwelve: decimal.RequireFromString("8.50"),
}

// normalizeInput lowercases and trims user input before alias lookup.
func normalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// ParseSize maps user input such as "8", " SMALL " or "12 inch" to a Size.
func ParseSize(input string) (Size, error) {
	size, ok := sizeAliases[normalizeInput(input)]
	if !ok {
		return 0, fmt.Errorf("invalid size '%s': %w", input, ErrInvalidSize)
	}
	return size, nil
}

// ParseBreadType maps user input such as "whole wheat" or "tortilla" to a BreadType.
func ParseBreadType(input string) (BreadType, error) {
	bread, ok := breadAliases[normalizeInput(input)]
	if !ok {
		return "", fmt.Errorf("invalid bread type '%s': %w", input, ErrInvalidBreadType)
	}
	return bread, nil
}

// Bread is the base of every sandwich.
type Bread struct {
	Size Size
	Type BreadType
}

// NewBread validates size and type input and returns the normalized bread.
func NewBread(sizeInput, typeInput string) (Bread, error) {
	size, err := ParseSize(sizeInput)
	if err != nil {
		return Bread{}, err
	}

	breadType, err := ParseBreadType(typeInput)
	if err != nil {
		return Bread{}, err
	}

	return Bread{Size: size, Type: breadType}, nil
}

// BasePrice returns the price of the bread alone.
func (b Bread) BasePrice() decimal.Decimal {
	return BasePrice(b.Size)
}

// DisplayName returns e.g. 8" White.
func (b Bread) DisplayName() string {
	return fmt.Sprintf("%s %s", b.Size, b.Type)
}

// BasePrice returns the bread price for a size. Unknown sizes are priced as 8".
func BasePrice(size Size) decimal.Decimal {
	if price, ok := basePrices[size]; ok {
		return price
	}
	return basePrices[SizeEight]
}
