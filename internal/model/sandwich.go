package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ToppingOrder is one portion of a topping on a sandwich.
type ToppingOrder struct {
	Topping Topping
	Extra   bool
}

// Price returns the cost of this portion on a sandwich of the given size.
func (o ToppingOrder) Price(size Size) decimal.Decimal {
	return o.Topping.Price(size, o.Extra && o.Topping.SupportsExtra())
}

// Sandwich is a bread with an ordered list of toppings.
type Sandwich struct {
	bread    Bread
	toppings []ToppingOrder
	toasted  bool
	// label overrides the generated name, e.g. for signature sandwiches.
	label string
}

// NewSandwich validates size and bread input and returns an untoasted sandwich.
func NewSandwich(sizeInput, breadInput string) (*Sandwich, error) {
	bread, err := NewBread(sizeInput, breadInput)
	if err != nil {
		return nil, err
	}
	return &Sandwich{bread: bread}, nil
}

// NewSandwichFromBread returns an untoasted sandwich on an already validated bread.
func NewSandwichFromBread(bread Bread) *Sandwich {
	return &Sandwich{bread: bread}
}

// Name returns the label if set, otherwise e.g. 8" White sandwich.
func (s *Sandwich) Name() string {
	if s.label != "" {
		return s.label
	}
	return s.bread.DisplayName() + " sandwich"
}

// SetLabel names the sandwich; an empty label restores the generated name.
func (s *Sandwich) SetLabel(label string) {
	s.label = label
}

// Bread returns the sandwich bread.
func (s *Sandwich) Bread() Bread {
	return s.bread
}

// Size returns the sandwich size.
func (s *Sandwich) Size() Size {
	return s.bread.Size
}

// SetSize changes the size; toppings are repriced automatically.
func (s *Sandwich) SetSize(input string) error {
	size, err := ParseSize(input)
	if err != nil {
		return err
	}
	s.bread.Size = size
	return nil
}

// SetBreadType changes the bread.
func (s *Sandwich) SetBreadType(input string) error {
	breadType, err := ParseBreadType(input)
	if err != nil {
		return err
	}
	s.bread.Type = breadType
	return nil
}

// Toasted reports whether the sandwich will be toasted.
func (s *Sandwich) Toasted() bool {
	return s.toasted
}

// SetToasted sets the toasted flag.
func (s *Sandwich) SetToasted(toasted bool) {
	s.toasted = toasted
}

// Toppings returns a copy of the topping list in the order added.
func (s *Sandwich) Toppings() []ToppingOrder {
	out := make([]ToppingOrder, len(s.toppings))
	copy(out, s.toppings)
	return out
}

// AddTopping appends a portion of t. Extra is forced off for toppings that
// do not support it; the return value reports whether that happened.
func (s *Sandwich) AddTopping(t Topping, extra bool) (downgraded bool) {
	if extra && !t.SupportsExtra() {
		extra = false
		downgraded = true
	}
	s.toppings = append(s.toppings, ToppingOrder{Topping: t, Extra: extra})
	return downgraded
}

// RemoveTopping removes every portion of t, extra or not, and returns how many were removed.
func (s *Sandwich) RemoveTopping(t Topping) int {
	kept := s.toppings[:0]
	removed := 0
	for _, o := range s.toppings {
		if o.Topping == t {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	s.toppings = kept
	return removed
}

// RemoveToppingOrder removes the first portion matching both t and extra.
func (s *Sandwich) RemoveToppingOrder(t Topping, extra bool) bool {
	for i, o := range s.toppings {
		if o.Topping == t && o.Extra == extra {
			s.toppings = append(s.toppings[:i], s.toppings[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveToppingAt removes the portion at index i.
func (s *Sandwich) RemoveToppingAt(i int) (ToppingOrder, error) {
	if i < 0 || i >= len(s.toppings) {
		return ToppingOrder{}, fmt.Errorf("topping %d: %w", i+1, ErrItemNotFound)
	}
	removed := s.toppings[i]
	s.toppings = append(s.toppings[:i], s.toppings[i+1:]...)
	return removed, nil
}

// ExtraCount counts the extra portions of toppings with the given name.
func (s *Sandwich) ExtraCount(name string) int {
	count := 0
	for _, o := range s.toppings {
		if o.Extra && o.Topping.Name == name {
			count++
		}
	}
	return count
}

// ToppingsTotal returns the sum of all topping prices at the current size.
func (s *Sandwich) ToppingsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, o := range s.toppings {
		total = total.Add(o.Price(s.bread.Size))
	}
	return total
}

// Price returns bread base price plus toppings.
func (s *Sandwich) Price() decimal.Decimal {
	return s.bread.BasePrice().Add(s.ToppingsTotal())
}

// Clone returns an independent copy of the sandwich.
func (s *Sandwich) Clone() *Sandwich {
	c := *s
	c.toppings = s.Toppings()
	return &c
}
