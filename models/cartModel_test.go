package models

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCartAddAndRemove(t *testing.T) {
	cart := &Cart{}

	assert.True(t, cart.AddItem(1, "Margherita", price("10.00"), "rest-1"))
	assert.True(t, cart.AddItem(1, "Margherita", price("10.00"), "rest-1"))
	assert.True(t, cart.AddItem(2, "Garlic Bread", price("4.50"), "rest-1"))

	assert.Equal(t, 2, cart.QuantityOf(1))
	assert.Equal(t, 1, cart.QuantityOf(2))
	assert.Equal(t, 0, cart.QuantityOf(99))
	assert.Equal(t, 3, cart.TotalItemCount())
	assert.True(t, price("24.50").Equal(cart.Subtotal()))

	cart.RemoveItem(1)
	assert.Equal(t, 1, cart.QuantityOf(1))
	cart.RemoveItem(1)
	assert.Equal(t, 0, cart.QuantityOf(1))
	assert.Len(t, cart.Lines, 1)

	// removing an absent item is a no-op
	cart.RemoveItem(99)
	assert.Len(t, cart.Lines, 1)

	cart.RemoveItem(2)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "", cart.RestaurantID)
}

func TestCartRejectsSecondRestaurant(t *testing.T) {
	cart := &Cart{}
	require.True(t, cart.AddItem(1, "Pad Thai", price("12.00"), "rest-1"))

	// bound to rest-1, so an item from rest-2 is a no-op
	assert.False(t, cart.AddItem(7, "Sushi Roll", price("8.00"), "rest-2"))
	assert.Equal(t, 1, cart.TotalItemCount())
	assert.Equal(t, "rest-1", cart.RestaurantID)

	cart.Clear()
	assert.True(t, cart.AddItem(7, "Sushi Roll", price("8.00"), "rest-2"))
	assert.Equal(t, "rest-2", cart.RestaurantID)
}

func TestCartSubtotalMatchesLines(t *testing.T) {
	cart := &Cart{}
	for i := 0; i < 3; i++ {
		cart.AddItem(1, "Burger", price("9.99"), "rest-1")
	}
	cart.AddItem(2, "Fries", price("3.25"), "rest-1")
	cart.RemoveItem(1)

	want := decimal.Zero
	count := 0
	for _, line := range cart.Lines {
		want = want.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		count += line.Quantity
	}
	assert.True(t, want.Equal(cart.Subtotal()))
	assert.Equal(t, count, cart.TotalItemCount())
}

func TestCartClear(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(1, "Taco", price("3.00"), "rest-1")
	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Lines)
	assert.Equal(t, "", cart.RestaurantID)
	assert.True(t, decimal.Zero.Equal(cart.Subtotal()))
}

func TestCartConcurrentMutation(t *testing.T) {
	sessions := NewCartSessions()
	sessionId := sessions.Create()

	const workers = 8
	const addsPerWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(itemId int) {
			defer wg.Done()
			cart, ok := sessions.Get(sessionId)
			require.True(t, ok)
			for i := 0; i < addsPerWorker; i++ {
				cart.AddItem(itemId, "Dumplings", price("6.00"), "rest-1")
				cart.Subtotal()
			}
			cart.RemoveItem(itemId)
		}(w)
	}
	wg.Wait()

	cart, ok := sessions.Get(sessionId)
	require.True(t, ok)
	assert.Equal(t, workers*(addsPerWorker-1), cart.TotalItemCount())
	want := price("6.00").Mul(decimal.NewFromInt(int64(workers * (addsPerWorker - 1))))
	assert.True(t, want.Equal(cart.Subtotal()))
}

func TestCartSnapshotIsDetached(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(1, "Pho", price("13.00"), "rest-1")

	snapshot := cart.Snapshot()
	cart.AddItem(2, "Spring Rolls", price("5.00"), "rest-1")

	assert.Len(t, snapshot.Lines, 1)
	assert.Equal(t, "rest-1", snapshot.RestaurantID)
	assert.True(t, price("13.00").Equal(snapshot.Subtotal()))
}

func TestCartSessions(t *testing.T) {
	sessions := NewCartSessions()

	sessionId := sessions.Create()
	require.NotEmpty(t, sessionId)

	cart, ok := sessions.Get(sessionId)
	require.True(t, ok)
	cart.AddItem(1, "Ramen", price("11.00"), "rest-1")

	again, ok := sessions.Get(sessionId)
	require.True(t, ok)
	assert.Equal(t, 1, again.TotalItemCount())

	other := sessions.Create()
	otherCart, ok := sessions.Get(other)
	require.True(t, ok)
	assert.True(t, otherCart.IsEmpty(), "sessions must not share carts")

	sessions.Remove(sessionId)
	_, ok = sessions.Get(sessionId)
	assert.False(t, ok)
}
