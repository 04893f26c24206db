package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandwich_PriceWithoutToppings(t *testing.T) {
	s, err := NewSandwich("8", "White")
	require.NoError(t, err)

	assert.True(t, BasePrice(SizeEight).Equal(s.Price()))
	assert.Equal(t, "8\" White sandwich", s.Name())
	assert.False(t, s.Toasted())
}

func TestNewSandwich_InvalidInput(t *testing.T) {
	_, err := NewSandwich("9", "white")
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewSandwich("small", "pita")
	assert.ErrorIs(t, err, ErrInvalidBreadType)
}

func TestSandwich_AddTopping_DowngradesExtra(t *testing.T) {
	s, err := NewSandwich("12", "rye")
	require.NoError(t, err)

	downgraded := s.AddTopping(mustTopping(t, 11), true)

	assert.True(t, downgraded)
	toppings := s.Toppings()
	require.Len(t, toppings, 1)
	assert.False(t, toppings[0].Extra)
	assert.True(t, BasePrice(SizeTwelve).Equal(s.Price()))
}

func TestSandwich_Price(t *testing.T) {
	s, err := NewSandwich("small", "wheat")
	require.NoError(t, err)

	assert.False(t, s.AddTopping(mustTopping(t, 2), true)) // ham 1.00 + 0.50
	s.AddTopping(mustTopping(t, 8), false)                 // provolone 0.75
	s.AddTopping(mustTopping(t, 20), false)                // mayo 0

	assert.True(t, decimal.RequireFromString("7.75").Equal(s.Price()), "got %s", s.Price())

	require.NoError(t, s.SetSize("large"))
	// 8.50 + 3.00 + 1.50 + 2.25
	assert.True(t, decimal.RequireFromString("15.25").Equal(s.Price()), "got %s", s.Price())
}

func TestSandwich_RemoveTopping(t *testing.T) {
	steak := mustTopping(t, 1)
	cheddar := mustTopping(t, 9)

	s, err := NewSandwich("8", "white")
	require.NoError(t, err)
	s.AddTopping(steak, false)
	s.AddTopping(cheddar, false)
	s.AddTopping(steak, true)

	t.Run("Remove matching order only", func(t *testing.T) {
		c := s.Clone()
		assert.True(t, c.RemoveToppingOrder(steak, true))
		assert.False(t, c.RemoveToppingOrder(steak, true))
		assert.Equal(t, 0, c.ExtraCount("Steak"))
		assert.Len(t, c.Toppings(), 2)
	})

	t.Run("Remove all occurrences", func(t *testing.T) {
		c := s.Clone()
		assert.Equal(t, 2, c.RemoveTopping(steak))
		toppings := c.Toppings()
		require.Len(t, toppings, 1)
		assert.Equal(t, cheddar, toppings[0].Topping)
	})

	t.Run("Remove by index", func(t *testing.T) {
		c := s.Clone()
		removed, err := c.RemoveToppingAt(1)
		require.NoError(t, err)
		assert.Equal(t, cheddar, removed.Topping)

		_, err = c.RemoveToppingAt(5)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	assert.Len(t, s.Toppings(), 3, "clones must not share toppings")
}

func TestSandwich_ExtraCount(t *testing.T) {
	s, err := NewSandwich("4", "wrap")
	require.NoError(t, err)

	swiss := mustTopping(t, 10)
	s.AddTopping(swiss, false)
	s.AddTopping(swiss, true)
	s.AddTopping(swiss, true)

	assert.Equal(t, 2, s.ExtraCount("Swiss"))
	assert.Equal(t, 0, s.ExtraCount("Cheddar"))
}

func TestSandwich_Clone(t *testing.T) {
	s, err := NewSandwich("8", "white")
	require.NoError(t, err)
	s.SetLabel("BLT")
	s.SetToasted(true)
	s.AddTopping(mustTopping(t, 6), false)

	c := s.Clone()
	c.AddTopping(mustTopping(t, 1), true)
	c.SetToasted(false)

	assert.Equal(t, "BLT", c.Name())
	assert.Len(t, s.Toppings(), 1)
	assert.True(t, s.Toasted())
	assert.False(t, s.Price().Equal(c.Price()))
}

func TestSandwich_SetBreadType(t *testing.T) {
	s, err := NewSandwich("8", "white")
	require.NoError(t, err)

	require.NoError(t, s.SetBreadType("tortilla"))
	assert.Equal(t, BreadWrap, s.Bread().Type)

	assert.ErrorIs(t, s.SetBreadType("brioche"), ErrInvalidBreadType)
	assert.Equal(t, BreadWrap, s.Bread().Type)
}
