package model

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Category groups toppings on the menu and drives their pricing.
type Category string

// Topping categories.
const (
	CategoryMeat    Category = "Meat"
	CategoryCheese  Category = "Cheese"
	CategoryRegular Category = "Regular"
	CategorySauce   Category = "Sauce"
	CategorySide    Category = "Side"
)

// Categories lists the topping categories in menu order.
var Categories = []Category{CategoryMeat, CategoryCheese, CategoryRegular, CategorySauce, CategorySide}

var categoryAliases = map[string]Category{
	"meat": CategoryMeat, "meats": CategoryMeat,
	"cheese": CategoryCheese, "cheeses": CategoryCheese,
	"regular": CategoryRegular, "regulars": CategoryRegular,
	"sauce": CategorySauce, "sauces": CategorySauce,
	"side": CategorySide, "sides": CategorySide,
}

// ParseCategory maps user input such as "Sauces" to a Category.
func ParseCategory(input string) (Category, error) {
	category, ok := categoryAliases[normalizeInput(input)]
	if !ok {
		return "", fmt.Errorf("unknown topping category '%s': %w", input, ErrInvalidTopping)
	}
	return category, nil
}

// Topping is a catalog entry. Only premium toppings are charged and only
// premium toppings can be ordered as an extra portion.
type Topping struct {
	Number   int
	Name     string
	Category Category
	Premium  bool
}

// portionPrice is what a premium topping costs at one sandwich size.
type portionPrice struct {
	Base  decimal.Decimal
	Extra decimal.Decimal
}

func portion(base, extra string) portionPrice {
	return portionPrice{
		Base:  decimal.RequireFromString(base),
		Extra: decimal.RequireFromString(extra),
	}
}

var premiumPrices = map[Category]map[Size]portionPrice{
	CategoryMeat: {
		SizeFour:   portion("1.00", "0.50"),
		SizeEight:  portion("2.00", "1.00"),
		SizeTwelve: portion("3.00", "1.50"),
	},
	CategoryCheese: {
		SizeFour:   portion("0.75", "0.30"),
		SizeEight:  portion("1.50", "0.60"),
		SizeTwelve: portion("2.25", "0.90"),
	},
}

// extraLimits caps how many extra portions of a single topping one sandwich may carry.
var extraLimits = map[Category]int{
	CategoryMeat:   2,
	CategoryCheese: 3,
}

// SupportsExtra reports whether an extra portion can be ordered.
func (t Topping) SupportsExtra() bool {
	return t.Premium
}

// Price returns the cost of the topping on a sandwich of the given size.
// The extra surcharge only applies to toppings that support extra.
func (t Topping) Price(size Size, extra bool) decimal.Decimal {
	if !t.Premium {
		return decimal.Zero
	}

	bySize, ok := premiumPrices[t.Category]
	if !ok {
		return decimal.Zero
	}

	p, ok := bySize[size]
	if !ok {
		p = bySize[SizeEight]
	}

	if extra {
		return p.Base.Add(p.Extra)
	}
	return p.Base
}

// ExtraLimit returns the maximum number of extra portions allowed per topping
// name for a category, or 0 when the category has no extras.
func ExtraLimit(category Category) int {
	return extraLimits[category]
}

var catalog = map[int]Topping{
	1:  {Number: 1, Name: "Steak", Category: CategoryMeat, Premium: true},
	2:  {Number: 2, Name: "Ham", Category: CategoryMeat, Premium: true},
	3:  {Number: 3, Name: "Salami", Category: CategoryMeat, Premium: true},
	4:  {Number: 4, Name: "Pastrami", Category: CategoryMeat, Premium: true},
	5:  {Number: 5, Name: "Chicken", Category: CategoryMeat, Premium: true},
	6:  {Number: 6, Name: "Bacon", Category: CategoryMeat, Premium: true},
	7:  {Number: 7, Name: "American", Category: CategoryCheese, Premium: true},
	8:  {Number: 8, Name: "Provolone", Category: CategoryCheese, Premium: true},
	9:  {Number: 9, Name: "Cheddar", Category: CategoryCheese, Premium: true},
	10: {Number: 10, Name: "Swiss", Category: CategoryCheese, Premium: true},
	11: {Number: 11, Name: "Lettuce", Category: CategoryRegular},
	12: {Number: 12, Name: "Peppers", Category: CategoryRegular},
	13: {Number: 13, Name: "Onions", Category: CategoryRegular},
	14: {Number: 14, Name: "Tomatoes", Category: CategoryRegular},
	15: {Number: 15, Name: "Jalapeños", Category: CategoryRegular},
	16: {Number: 16, Name: "Cucumbers", Category: CategoryRegular},
	17: {Number: 17, Name: "Pickles", Category: CategoryRegular},
	18: {Number: 18, Name: "Guacamole", Category: CategoryRegular},
	19: {Number: 19, Name: "Mushrooms", Category: CategoryRegular},
	20: {Number: 20, Name: "Mayo", Category: CategorySauce},
	21: {Number: 21, Name: "Mustard", Category: CategorySauce},
	22: {Number: 22, Name: "Ketchup", Category: CategorySauce},
	23: {Number: 23, Name: "Ranch", Category: CategorySauce},
	24: {Number: 24, Name: "Thousand Islands", Category: CategorySauce},
	25: {Number: 25, Name: "Vinaigrette", Category: CategorySauce},
	26: {Number: 26, Name: "Au Jus", Category: CategorySide},
	27: {Number: 27, Name: "French Fries", Category: CategorySide},
	28: {Number: 28, Name: "Coleslaw", Category: CategorySide},
	29: {Number: 29, Name: "Pickles", Category: CategorySide},
	30: {Number: 30, Name: "DELI-cious Dip", Category: CategorySide},
}

// ToppingByNumber looks up a topping by its menu number.
func ToppingByNumber(number int) (Topping, error) {
	t, ok := catalog[number]
	if !ok {
		return Topping{}, fmt.Errorf("topping #%d: %w", number, ErrInvalidTopping)
	}
	return t, nil
}

// Toppings returns the full catalog ordered by menu number.
func Toppings() []Topping {
	out := make([]Topping, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// ToppingsByCategory returns the toppings of one category ordered by menu number.
func ToppingsByCategory(category Category) []Topping {
	var out []Topping
	for _, t := range Toppings() {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}
