package console

import (
	"context"
	"strings"

	"deli-cious/internal/model"
)

// orderScreen returns when the order is paid for or cancelled.
func (a *App) orderScreen(ctx context.Context) error {
	for {
		a.showOrder()

		a.term.Heading("--- Order Screen ---")
		a.term.Println("1) Add Sandwich (Custom)")
		a.term.Println("2) Add Drink")
		a.term.Println("3) Add Chips")
		a.term.Println("4) Remove Item")
		a.term.Println("5) Modify Sandwich")
		a.term.Println("6) Checkout")
		a.term.Println("0) Cancel Order (Back to Home)")

		choice, err := a.term.Int(ctx, "Enter your choice: ")
		if err != nil {
			return err
		}

		var done bool
		switch choice {
		case 1:
			err = a.addSandwiches(ctx)
		case 2:
			err = a.addDrink(ctx)
		case 3:
			err = a.addChips(ctx)
		case 4:
			err = a.removeItem(ctx)
		case 5:
			err = a.modifySandwich(ctx)
		case 6:
			done, err = a.checkout(ctx)
		case 0:
			done, err = a.cancelOrder(ctx)
		default:
			a.term.Error("Invalid option. Please try again.")
		}

		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (a *App) showOrder() {
	order := a.svc.Order()
	if order.IsEmpty() {
		a.term.Heading("--- Your Order is Currently Empty ---")
		return
	}

	a.term.Heading("--- Your Current Order ---")
	a.term.Printf("%s", order.Details())
}

func (a *App) addSandwiches(ctx context.Context) error {
	for {
		sandwich, err := a.buildSandwich(ctx)
		if err != nil {
			return err
		}

		a.svc.AddItem(sandwich)
		a.term.Printf("Sandwich '%s' added to your order!\n", sandwich.Name())

		another, err := a.term.Confirm(ctx, "Would you like to add another custom sandwich? (Yes/No): ")
		if err != nil || !another {
			return err
		}
	}
}

func (a *App) addDrink(ctx context.Context) error {
	a.term.Heading("--- Add Drink ---")

	flavor, err := a.term.String(ctx, "Please enter the drink flavor: ")
	if err != nil {
		return err
	}

	sizes := make([]string, len(model.DrinkSizes))
	for i, size := range model.DrinkSizes {
		sizes[i] = string(size) + " " + model.FormatPrice(model.DrinkPrice(size))
	}
	a.term.Println("Available sizes:", strings.Join(sizes, ", "))

	size, err := a.term.String(ctx, "Enter drink size ('Small', 'Medium', 'Large' or abbreviations): ")
	if err != nil {
		return err
	}

	drink, err := a.svc.AddDrink(size, flavor)
	if err != nil {
		a.term.Error("Error adding drink: " + err.Error())
		return nil
	}

	a.term.Printf("'%s' added to your order for %s.\n", drink.Name(), model.FormatPrice(drink.Price()))
	return nil
}

func (a *App) addChips(ctx context.Context) error {
	for {
		a.term.Heading("--- Add Chips ---")

		kind, err := a.term.String(ctx, "What chips would you like: ")
		if err != nil {
			return err
		}

		chips := a.svc.AddChips(kind)
		a.term.Printf("'%s' added to your order for %s.\n", chips.Name(), model.FormatPrice(chips.Price()))

		another, err := a.term.Confirm(ctx, "Add another bag of chips? (Yes/No): ")
		if err != nil || !another {
			return err
		}
	}
}

func (a *App) removeItem(ctx context.Context) error {
	items := a.svc.Order().Items()
	if len(items) == 0 {
		a.term.Notice("Your order is empty. Nothing to remove.")
		return nil
	}

	a.term.Heading("--- Remove Item ---")
	for i, item := range items {
		a.term.Printf("%d) %s - %s\n", i+1, item.Name(), model.FormatPrice(item.Price()))
	}
	a.term.Println("0) Go back")

	selection, err := a.term.Int(ctx, "Enter the number of the item you want to remove: ")
	if err != nil || selection == 0 {
		return err
	}

	removed, err := a.svc.RemoveItem(selection - 1)
	if err != nil {
		a.term.Error("Invalid selection. Please enter a number from the list.")
		return nil
	}

	a.term.Printf("'%s' removed from order.\n", removed.Name())
	return nil
}

func (a *App) modifySandwich(ctx context.Context) error {
	sandwiches := a.svc.Order().Sandwiches()
	if len(sandwiches) == 0 {
		a.term.Notice("No sandwiches in your order to modify.")
		return nil
	}

	a.term.Heading("--- Select Sandwich to Modify ---")
	for i, s := range sandwiches {
		a.term.Printf("%d) %s - %s\n", i+1, s.Name(), model.FormatPrice(s.Price()))
	}
	a.term.Println("0) Go back")

	selection, err := a.term.Int(ctx, "Enter the number of the sandwich you want to modify: ")
	if err != nil || selection == 0 {
		return err
	}
	if selection < 0 || selection > len(sandwiches) {
		a.term.Error("Invalid selection. Please enter a number from the list.")
		return nil
	}

	sandwich := sandwiches[selection-1]
	if err := a.editSandwich(ctx, sandwich); err != nil {
		return err
	}

	a.term.Printf("Sandwich '%s' has been modified.\n", sandwich.Name())
	return nil
}

// cancelOrder reports whether the order was discarded.
func (a *App) cancelOrder(ctx context.Context) (bool, error) {
	confirmed, err := a.term.Confirm(ctx, "Are you sure you want to cancel the order? All items will be removed. (Yes/No): ")
	if err != nil {
		return false, err
	}

	if !confirmed {
		a.term.Println("Order not cancelled. Returning to order screen.")
		return false, nil
	}

	a.svc.Cancel()
	a.term.Println("Order cancelled. Returning to the home screen.")
	return true, nil
}
