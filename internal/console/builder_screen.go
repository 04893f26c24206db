package console

import (
	"context"
	"errors"
	"strings"

	"deli-cious/internal/model"
)

var categoryLabels = map[model.Category]string{
	model.CategoryMeat:    "Meat",
	model.CategoryCheese:  "Cheese",
	model.CategoryRegular: "Regular Toppings",
	model.CategorySauce:   "Sauces",
	model.CategorySide:    "Sides",
}

func (a *App) buildSandwich(ctx context.Context) (*model.Sandwich, error) {
	a.term.Title("=== Build Your Custom Sandwich ===")

	var sandwich *model.Sandwich
	for sandwich == nil {
		size, err := a.term.String(ctx, `Enter sandwich size. Available sizes include (4", 8", 12"): `)
		if err != nil {
			return nil, err
		}

		bread, err := a.term.String(ctx, "Enter bread type. Available bread types include (White, Wheat, Rye, Wrap): ")
		if err != nil {
			return nil, err
		}

		sandwich, err = a.svc.NewSandwich(size, bread)
		if err != nil {
			a.term.Error(err.Error())
			continue
		}
		a.term.Printf("Starting your %s.\n", sandwich.Name())
	}

	if err := a.addToppings(ctx, sandwich); err != nil {
		return nil, err
	}

	if err := a.promptToast(ctx, sandwich); err != nil {
		return nil, err
	}

	return sandwich, nil
}

func (a *App) addToppings(ctx context.Context, sandwich *model.Sandwich) error {
	for {
		a.term.Heading("--- Add Toppings ---")
		for i, category := range model.Categories {
			a.term.Printf("%d) %s\n", i+1, categoryLabels[category])
		}
		a.term.Println("0) Done Adding Toppings!")

		choice, err := a.term.Int(ctx, "Select topping category: ")
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		if choice < 0 || choice > len(model.Categories) {
			a.term.Error("Invalid category. Please try again.")
			continue
		}

		category := model.Categories[choice-1]
		toppings := model.ToppingsByCategory(category)
		if len(toppings) == 0 {
			a.term.Notice("No toppings available in this category.")
			continue
		}

		a.term.Heading("--- Available " + string(category) + " Toppings ---")
		for _, t := range toppings {
			a.term.Printf("%d) %s\n", t.Number, t.Name)
		}

		number, err := a.term.Int(ctx, "Enter topping number to add (0 to return to categories): ")
		if err != nil {
			return err
		}
		if number == 0 {
			continue
		}

		topping, err := a.svc.LookupTopping(category, number)
		if err != nil {
			a.term.Error("Invalid topping number for the selected category " + string(category) + ". Please try again.")
			continue
		}

		extra := false
		if topping.SupportsExtra() {
			extra, err = a.term.Confirm(ctx, "Add extra "+topping.Name+"? (Yes/No): ")
			if err != nil {
				return err
			}
		}

		result, err := a.svc.AddTopping(sandwich, topping.Number, extra)
		switch {
		case errors.Is(err, model.ErrExtraLimitReached):
			a.term.Notice("Limit reached! You can add a maximum of %d extra portions of %s.", result.Limit, topping.Name)
		case err != nil:
			a.term.Error(err.Error())
			continue
		}

		if result.Extra {
			a.term.Printf("%s (extra) added to your sandwich.\n", topping.Name)
		} else {
			a.term.Printf("%s added to your sandwich.\n", topping.Name)
		}

		more, err := a.term.Confirm(ctx, "Add another topping? (Yes/No): ")
		if err != nil || !more {
			return err
		}
	}
}

func (a *App) removeTopping(ctx context.Context, sandwich *model.Sandwich) error {
	toppings := sandwich.Toppings()
	if len(toppings) == 0 {
		a.term.Notice("This sandwich has no toppings to remove.")
		return nil
	}

	a.term.Heading("--- Remove Topping ---")
	for i, t := range toppings {
		a.term.Printf("%d) %s\n", i+1, toppingLabel(t))
	}
	a.term.Println("0) Go back")

	selection, err := a.term.Int(ctx, "Enter number of topping to remove (0 to go back): ")
	if err != nil || selection == 0 {
		return err
	}

	removed, err := a.svc.RemoveTopping(sandwich, selection-1)
	if err != nil {
		a.term.Error("Invalid selection. Please enter a number from the list.")
		return nil
	}

	a.term.Printf("%s removed.\n", toppingLabel(removed))
	return nil
}

// editSandwich lets the customer change toppings on a sandwich already in the order.
func (a *App) editSandwich(ctx context.Context, sandwich *model.Sandwich) error {
	a.term.Heading("--- Modifying Your Sandwich ---")
	a.showSandwich(sandwich)

	for {
		a.term.Heading("--- Modification Options ---")
		a.term.Println("1) Add Topping")
		a.term.Println("2) Remove Topping")
		a.term.Println("3) Change Toasting")
		a.term.Println("0) Done Modifying!")

		option, err := a.term.Int(ctx, "Choose an option: ")
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = a.addToppings(ctx, sandwich)
		case 2:
			err = a.removeTopping(ctx, sandwich)
		case 3:
			err = a.promptToast(ctx, sandwich)
		case 0:
			a.term.Println("Your changes have been saved!")
			return nil
		default:
			a.term.Error("Invalid option. Please try again.")
		}
		if err != nil {
			return err
		}

		a.showSandwich(sandwich)

		more, err := a.term.Confirm(ctx, "Continue modifying? (Yes/No): ")
		if err != nil || !more {
			return err
		}
	}
}

func (a *App) promptToast(ctx context.Context, sandwich *model.Sandwich) error {
	toasted, err := a.term.Confirm(ctx, "Current toasted status: "+yesNo(sandwich.Toasted())+". Do you want your sandwich toasted? (Yes/No): ")
	if err != nil {
		return err
	}

	sandwich.SetToasted(toasted)
	if toasted {
		a.term.Println("Sandwich will be toasted.")
	} else {
		a.term.Println("Sandwich will not be toasted.")
	}
	return nil
}

func (a *App) showSandwich(sandwich *model.Sandwich) {
	var b strings.Builder

	b.WriteString("Name: " + sandwich.Name() + "\n")
	b.WriteString("Bread: " + sandwich.Bread().DisplayName() + "\n")
	b.WriteString("Toasted: " + yesNo(sandwich.Toasted()) + "\n")
	b.WriteString("Toppings:\n")

	toppings := sandwich.Toppings()
	if len(toppings) == 0 {
		b.WriteString("  (No Toppings yet)\n")
	}
	for _, t := range toppings {
		b.WriteString("  - " + toppingLabel(t) + "\n")
	}
	b.WriteString("Current Price: " + model.FormatPrice(sandwich.Price()) + "\n")

	a.term.Heading("--- Current Sandwich Details ---")
	a.term.Printf("%s", b.String())
}

func toppingLabel(t model.ToppingOrder) string {
	if t.Extra {
		return t.Topping.Name + " (Extra)"
	}
	return t.Topping.Name
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
