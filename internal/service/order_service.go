package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"deli-cious/internal/menu"
	"deli-cious/internal/model"
	"deli-cious/internal/receipt"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	order  *model.Order
	menu   *menu.Menu
	store  receipt.Store
	logger zerolog.Logger
	now    func() time.Time
}

// NewOrderService creates a new order service with an empty order.
func NewOrderService(signatures *menu.Menu, store receipt.Store, logger zerolog.Logger) OrderService {
	return &orderService{
		order:  model.NewOrder(),
		menu:   signatures,
		store:  store,
		logger: logger.With().Str("service", "order").Logger(),
		now:    time.Now,
	}
}

// Order returns the current order.
func (s *orderService) Order() *model.Order {
	return s.order
}

// Menu returns the signature sandwich menu.
func (s *orderService) Menu() *menu.Menu {
	return s.menu
}

// NewSandwich validates size and bread input.
func (s *orderService) NewSandwich(sizeInput, breadInput string) (*model.Sandwich, error) {
	sandwich, err := model.NewSandwich(sizeInput, breadInput)
	if err != nil {
		s.logger.Debug().
			Str("size", sizeInput).
			Str("bread", breadInput).
			Err(err).
			Msg("invalid sandwich input")
		return nil, err
	}
	return sandwich, nil
}

// LookupTopping returns the catalog topping number if it belongs to category.
func (s *orderService) LookupTopping(category model.Category, number int) (model.Topping, error) {
	topping, err := model.ToppingByNumber(number)
	if err != nil {
		return model.Topping{}, err
	}

	if topping.Category != category {
		return model.Topping{}, fmt.Errorf("topping #%d is not a %s topping: %w", number, category, model.ErrInvalidTopping)
	}

	return topping, nil
}

// AddTopping adds a catalog topping to the sandwich.
func (s *orderService) AddTopping(sandwich *model.Sandwich, number int, extra bool) (ToppingResult, error) {
	topping, err := model.ToppingByNumber(number)
	if err != nil {
		return ToppingResult{}, err
	}

	result := ToppingResult{
		Topping: topping,
		Limit:   model.ExtraLimit(topping.Category),
	}

	var limitErr error
	if extra {
		switch {
		case !topping.SupportsExtra():
			result.NotExtraCapable = true
		case sandwich.ExtraCount(topping.Name) >= result.Limit:
			result.LimitReached = true
			limitErr = fmt.Errorf("extra %s limit is %d: %w", topping.Name, result.Limit, model.ErrExtraLimitReached)
			s.logger.Debug().
				Str("topping", topping.Name).
				Int("limit", result.Limit).
				Msg("extra limit reached, adding regular portion")
		default:
			result.Extra = true
		}
	}

	sandwich.AddTopping(topping, result.Extra)

	return result, limitErr
}

// RemoveTopping removes the topping portion at a 0-based index.
func (s *orderService) RemoveTopping(sandwich *model.Sandwich, index int) (model.ToppingOrder, error) {
	removed, err := sandwich.RemoveToppingAt(index)
	if err != nil {
		return model.ToppingOrder{}, err
	}

	s.logger.Debug().
		Str("sandwich", sandwich.Name()).
		Str("topping", removed.Topping.Name).
		Bool("extra", removed.Extra).
		Msg("topping removed")

	return removed, nil
}

// AddItem places an item on the order.
func (s *orderService) AddItem(item model.MenuItem) {
	if item == nil {
		return
	}

	s.order.Add(item)

	s.logger.Debug().
		Str("item", item.Name()).
		Str("price", item.Price().StringFixed(2)).
		Int("item_count", s.order.Len()).
		Msg("item added")
}

// AddSignature places a copy of a signature sandwich on the order.
func (s *orderService) AddSignature(position int) (*model.Sandwich, error) {
	sig, ok := s.menu.Get(position)
	if !ok {
		return nil, fmt.Errorf("signature sandwich %d: %w", position, model.ErrItemNotFound)
	}

	sandwich := sig.NewSandwich()
	s.AddItem(sandwich)

	return sandwich, nil
}

// AddDrink validates the size input and places the drink on the order.
func (s *orderService) AddDrink(sizeInput, flavor string) (*model.Drink, error) {
	drink, err := model.NewDrink(sizeInput, flavor)
	if err != nil {
		return nil, err
	}

	s.AddItem(drink)

	return drink, nil
}

// AddChips places a bag of chips on the order.
func (s *orderService) AddChips(kind string) *model.Chips {
	chips := model.NewChips(kind)
	s.AddItem(chips)
	return chips
}

// RemoveItem removes the item at a 0-based index.
func (s *orderService) RemoveItem(index int) (model.MenuItem, error) {
	item, err := s.order.RemoveAt(index)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("item", item.Name()).
		Int("item_count", s.order.Len()).
		Msg("item removed")

	return item, nil
}

// Cancel discards the order and starts a new one.
func (s *orderService) Cancel() {
	s.logger.Info().
		Str("order_id", s.order.ID.String()).
		Int("item_count", s.order.Len()).
		Msg("order cancelled")

	s.order.Reset()
}

// Checkout takes payment, stores the receipt and starts a new order. The
// order is left untouched when payment is refused or the receipt cannot be saved.
func (s *orderService) Checkout(ctx context.Context, paymentMethod string) (*CheckoutResult, error) {
	if s.order.IsEmpty() {
		return nil, model.ErrEmptyOrder
	}

	if !strings.EqualFold(strings.TrimSpace(paymentMethod), model.PaymentCash) {
		s.logger.Warn().
			Str("order_id", s.order.ID.String()).
			Str("payment_method", paymentMethod).
			Msg("unsupported payment method")
		return nil, model.ErrUnsupportedPayment
	}

	rcpt := model.NewReceipt(s.order, model.PaymentCash, s.now())

	location, err := s.store.Save(ctx, rcpt)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", rcpt.OrderID.String()).
			Msg("failed to save receipt")
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	s.logger.Info().
		Str("order_id", rcpt.OrderID.String()).
		Str("total", rcpt.Total.StringFixed(2)).
		Int("item_count", len(rcpt.Items)).
		Str("location", location).
		Msg("order checked out")

	s.order.Reset()

	return &CheckoutResult{
		Receipt:  rcpt,
		Location: location,
	}, nil
}
