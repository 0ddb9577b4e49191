package models

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one menu item inside a cart. Lines are unique by ItemID.
type CartLine struct {
	ItemID    int             `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Cart holds the items a customer picked from a single restaurant before
// checkout. A cart is bound to the restaurant of its first item; adding an
// item from a different restaurant is a no-op and callers that want to switch
// restaurants must Clear first.
//
// Every method takes the cart's own lock: one session can be hit by several
// requests at once (double clicks, two tabs) and the lines must stay
// consistent under that.
type Cart struct {
	mu           sync.Mutex
	Lines        []CartLine `json:"lines"`
	RestaurantID string     `json:"restaurant_id"`
}

func (cart *Cart) AddItem(itemId int, name string, unitPrice decimal.Decimal, restaurantId string) bool {
	cart.mu.Lock()
	defer cart.mu.Unlock()

	if cart.RestaurantID != "" && cart.RestaurantID != restaurantId {
		return false
	}
	cart.RestaurantID = restaurantId
	for i := range cart.Lines {
		if cart.Lines[i].ItemID == itemId {
			cart.Lines[i].Quantity++
			return true
		}
	}
	cart.Lines = append(cart.Lines, CartLine{
		ItemID:    itemId,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
	return true
}

func (cart *Cart) RemoveItem(itemId int) {
	cart.mu.Lock()
	defer cart.mu.Unlock()

	for i := range cart.Lines {
		if cart.Lines[i].ItemID != itemId {
			continue
		}
		cart.Lines[i].Quantity--
		if cart.Lines[i].Quantity <= 0 {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
		}
		break
	}
	if len(cart.Lines) == 0 {
		cart.RestaurantID = ""
	}
}

func (cart *Cart) QuantityOf(itemId int) int {
	cart.mu.Lock()
	defer cart.mu.Unlock()

	for i := range cart.Lines {
		if cart.Lines[i].ItemID == itemId {
			return cart.Lines[i].Quantity
		}
	}
	return 0
}

func (cart *Cart) Subtotal() decimal.Decimal {
	cart.mu.Lock()
	defer cart.mu.Unlock()

	subtotal := decimal.Zero
	for i := range cart.Lines {
		qty := decimal.NewFromInt(int64(cart.Lines[i].Quantity))
		subtotal = subtotal.Add(cart.Lines[i].UnitPrice.Mul(qty))
	}
	return subtotal
}

func (cart *Cart) TotalItemCount() int {
	cart.mu.Lock()
	defer cart.mu.Unlock()

	count := 0
	for i := range cart.Lines {
		count += cart.Lines[i].Quantity
	}
	return count
}

func (cart *Cart) IsEmpty() bool {
	cart.mu.Lock()
	defer cart.mu.Unlock()
	return len(cart.Lines) == 0 || cart.RestaurantID == ""
}

func (cart *Cart) Clear() {
	cart.mu.Lock()
	defer cart.mu.Unlock()
	cart.Lines = nil
	cart.RestaurantID = ""
}

// Snapshot returns a detached copy of the cart. Handlers that need a stable
// view across several reads (pricing, serialization, order item creation)
// work on the snapshot instead of the live cart.
func (cart *Cart) Snapshot() *Cart {
	cart.mu.Lock()
	defer cart.mu.Unlock()

	lines := make([]CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	return &Cart{Lines: lines, RestaurantID: cart.RestaurantID}
}

// CartSessions keeps one cart per browser session, keyed by a server issued
// session id. Each session owns its cart; there is no cross session state.
type CartSessions struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewCartSessions() *CartSessions {
	return &CartSessions{carts: make(map[string]*Cart)}
}

func (s *CartSessions) Create() string {
	sessionId := uuid.NewString()
	s.mu.Lock()
	s.carts[sessionId] = &Cart{}
	s.mu.Unlock()
	return sessionId
}

func (s *CartSessions) Get(sessionId string) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[sessionId]
	return cart, ok
}

func (s *CartSessions) Remove(sessionId string) {
	s.mu.Lock()
	delete(s.carts, sessionId)
	s.mu.Unlock()
}
