package console

import (
	"context"
	"errors"
	"io"

	"deli-cious/internal/model"
	"deli-cious/internal/service"

	"github.com/rs/zerolog"
)

const farewell = "Thanks for coming to the sandwich shop. Have a DELI-cious day!"

// App drives the shop screens for one customer session at a time.
type App struct {
	svc    service.OrderService
	term   *Prompter
	logger zerolog.Logger
}

// NewApp creates the console application.
func NewApp(svc service.OrderService, in io.Reader, out io.Writer, logger zerolog.Logger) *App {
	return &App{
		svc:    svc,
		term:   NewPrompter(in, out),
		logger: logger.With().Str("component", "console").Logger(),
	}
}

// Run shows the home screen until the customer exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.term.Close()

	err := a.home(ctx)
	if errors.Is(err, io.EOF) {
		a.logger.Debug().Msg("input closed")
		a.term.Println()
		a.term.Println(farewell)
		return nil
	}
	return err
}

func (a *App) home(ctx context.Context) error {
	for {
		a.term.Title("=== DELI-cious Home Screen ===")
		a.term.Println("1) New Order (Custom Sandwich)")
		a.term.Println("2) Pick Signature Sandwich")
		a.term.Println("0) Exit")

		choice, err := a.term.Int(ctx, "Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if !a.svc.Order().IsEmpty() {
				a.svc.Cancel()
			}
			a.term.Heading("--- Starting New Custom Order ---")
			if err := a.orderScreen(ctx); err != nil {
				return err
			}
		case 2:
			if err := a.pickSignature(ctx); err != nil {
				return err
			}
			if !a.svc.Order().IsEmpty() {
				a.term.Heading("--- Proceeding to Order Screen ---")
				if err := a.orderScreen(ctx); err != nil {
					return err
				}
			}
		case 0:
			a.term.Println(farewell)
			return nil
		default:
			a.term.Error("Invalid option. Please try again.")
		}
	}
}

func (a *App) pickSignature(ctx context.Context) error {
	signatures := a.svc.Menu()
	if signatures.Len() == 0 {
		a.term.Notice("Sorry, there are no signature sandwiches available right now.")
		return nil
	}

	a.term.Heading("--- Pick a Signature Sandwich ---")
	for i, sig := range signatures.Signatures {
		a.term.Printf("%d) %s (%s)\n", i+1, sig.Name, sig.Price())
	}
	a.term.Println("0) Back to Home Screen")

	for {
		selection, err := a.term.Int(ctx, "Enter the number of the signature sandwich you want: ")
		if err != nil {
			return err
		}
		if selection == 0 {
			a.term.Println("No signature sandwich added.")
			return nil
		}

		sandwich, err := a.svc.AddSignature(selection)
		if errors.Is(err, model.ErrItemNotFound) {
			a.term.Error("Invalid selection. Please enter a number from the list.")
			continue
		}
		if err != nil {
			return err
		}

		a.term.Printf("'%s' added to your order!\n", sandwich.Name())
		return nil
	}
}
