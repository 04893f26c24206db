package console

import (
	"fmt"
	"io"
	"strings"

	"deli-cious/internal/menu"
	"deli-cious/internal/model"
)

// PrintCatalog writes the full price list: breads, toppings, drinks, chips
// and signature sandwiches.
func PrintCatalog(out io.Writer, signatures *menu.Menu) {
	p := NewPrompter(nil, out)

	p.Title("=== DELI-cious Menu ===")

	p.Heading("Bread (White, Wheat, Rye, Wrap)")
	for _, size := range model.Sizes {
		p.Printf("  %-4s %s\n", size, model.FormatPrice(model.BasePrice(size)))
	}

	for _, category := range model.Categories {
		p.Heading(categoryLabels[category])
		for _, t := range model.ToppingsByCategory(category) {
			p.Printf("  %2d) %-18s %s\n", t.Number, t.Name, toppingPrices(t))
		}
	}

	p.Heading("Drinks")
	for _, size := range model.DrinkSizes {
		p.Printf("  %-7s %s\n", size, model.FormatPrice(model.DrinkPrice(size)))
	}

	p.Heading("Chips")
	p.Printf("  Any bag %s\n", model.FormatPrice(model.ChipsPrice))

	if signatures != nil && signatures.Len() > 0 {
		p.Heading("Signature Sandwiches")
		for i, sig := range signatures.Signatures {
			p.Printf("  %d) %s (%s)\n", i+1, sig.Name, sig.Price())
		}
	}
}

func toppingPrices(t model.Topping) string {
	if !t.Premium {
		return "included"
	}

	parts := make([]string, 0, len(model.Sizes))
	for _, size := range model.Sizes {
		base := t.Price(size, false)
		extra := t.Price(size, true).Sub(base)
		parts = append(parts, fmt.Sprintf("%s %s (+%s extra)", size, model.FormatPrice(base), model.FormatPrice(extra)))
	}
	return strings.Join(parts, ", ")
}
