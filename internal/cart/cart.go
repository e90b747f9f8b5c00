// Package cart implements the in-session shopping cart: a single-restaurant
// list of menu item lines with quantity merging and derived pricing. The
// engine is pure state; persistence and catalog lookups live in the services
// layer.
package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDifferentRestaurant is returned when an item from another restaurant is
// added to a non-empty cart. The caller resolves it by asking the user to
// confirm a cart replacement (ReplaceWith).
var ErrDifferentRestaurant = errors.New("cart holds items from a different restaurant")

// Pricing is the configured pricing policy. The delivery fee is flat:
// charged when the cart is non-empty, zero when empty.
type Pricing struct {
	TaxRate     decimal.Decimal
	DeliveryFee decimal.Decimal
}

// Candidate is a menu item resolved from the catalog, ready to be added.
type Candidate struct {
	MenuItemID     string
	Name           string
	Description    string
	Price          decimal.Decimal
	RestaurantID   string
	RestaurantName string
}

// Line is one cart entry: a distinct menu item and its quantity.
type Line struct {
	ID             int64           `json:"id"`
	MenuItemID     string          `json:"menu_item_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Instructions   string          `json:"instructions,omitempty"`
	RestaurantID   string          `json:"restaurant_id"`
	RestaurantName string          `json:"restaurant_name"`
}

// Engine holds the cart state for one session. Lines keep insertion order.
// Invariants: every line shares restaurantID; restaurantID is empty iff
// there are no lines; quantities are always >= 1.
type Engine struct {
	pricing      Pricing
	lines        []Line
	restaurantID string
	open         bool
}

func NewEngine(pricing Pricing) *Engine {
	return &Engine{pricing: pricing}
}

// AddItem adds a candidate to the cart. Adding from a different restaurant
// than the current one is refused with ErrDifferentRestaurant and leaves the
// cart untouched. Adding an item already in the cart increments its quantity
// instead of creating a second line.
func (e *Engine) AddItem(c Candidate) error {
	if len(e.lines) > 0 && c.RestaurantID != e.restaurantID {
		return ErrDifferentRestaurant
	}

	e.open = true

	for i := range e.lines {
		if e.lines[i].MenuItemID == c.MenuItemID {
			e.lines[i].Quantity++
			return nil
		}
	}

	e.lines = append(e.lines, Line{
		ID:             e.nextLineID(),
		MenuItemID:     c.MenuItemID,
		Name:           c.Name,
		Description:    c.Description,
		Price:          c.Price,
		Quantity:       1,
		RestaurantID:   c.RestaurantID,
		RestaurantName: c.RestaurantName,
	})
	e.restaurantID = c.RestaurantID
	return nil
}

// ReplaceWith clears the cart and inserts the candidate as its only line,
// rebinding the cart to the candidate's restaurant. This is the explicit
// resolution of ErrDifferentRestaurant.
func (e *Engine) ReplaceWith(c Candidate) {
	e.Clear()
	// AddItem on an empty cart cannot conflict
	_ = e.AddItem(c)
}

// RemoveLine deletes the line with the given id; no-op when absent.
func (e *Engine) RemoveLine(id int64) {
	for i := range e.lines {
		if e.lines[i].ID == id {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			break
		}
	}
	if len(e.lines) == 0 {
		e.restaurantID = ""
	}
}

// IncrementQuantity adds one to the line's quantity; no-op when absent.
func (e *Engine) IncrementQuantity(id int64) {
	for i := range e.lines {
		if e.lines[i].ID == id {
			e.lines[i].Quantity++
			return
		}
	}
}

// DecrementQuantity subtracts one from the line's quantity. A line never
// stays at quantity zero: decrementing from 1 removes it.
func (e *Engine) DecrementQuantity(id int64) {
	for i := range e.lines {
		if e.lines[i].ID == id {
			if e.lines[i].Quantity <= 1 {
				e.RemoveLine(id)
				return
			}
			e.lines[i].Quantity--
			return
		}
	}
}

// SetInstructions attaches special instructions to a line; no-op when absent.
func (e *Engine) SetInstructions(id int64, text string) {
	for i := range e.lines {
		if e.lines[i].ID == id {
			e.lines[i].Instructions = text
			return
		}
	}
}

// Clear empties the cart. Idempotent.
func (e *Engine) Clear() {
	e.lines = nil
	e.restaurantID = ""
}

// Subtotal is the sum of price x quantity over all lines, rounded to two
// decimal places. Always recomputed from the current lines.
func (e *Engine) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range e.lines {
		sum = sum.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum.Round(2)
}

// DeliveryFee is the flat configured fee for non-empty carts, zero otherwise.
func (e *Engine) DeliveryFee() decimal.Decimal {
	if len(e.lines) == 0 {
		return decimal.Zero
	}
	return e.pricing.DeliveryFee
}

// Tax is subtotal times the configured rate, rounded to two decimal places.
func (e *Engine) Tax() decimal.Decimal {
	return e.Subtotal().Mul(e.pricing.TaxRate).Round(2)
}

// Total is subtotal + delivery fee + tax.
func (e *Engine) Total() decimal.Decimal {
	return e.Subtotal().Add(e.DeliveryFee()).Add(e.Tax()).Round(2)
}

// Lines returns a copy of the cart lines in insertion order.
func (e *Engine) Lines() []Line {
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

func (e *Engine) RestaurantID() string {
	return e.restaurantID
}

// RestaurantName returns the display name of the bound restaurant.
func (e *Engine) RestaurantName() string {
	if len(e.lines) == 0 {
		return ""
	}
	return e.lines[0].RestaurantName
}

func (e *Engine) IsEmpty() bool {
	return len(e.lines) == 0
}

// IsOpen reports the cart sidebar visibility flag. UI state only.
func (e *Engine) IsOpen() bool {
	return e.open
}

func (e *Engine) Toggle() {
	e.open = !e.open
}

func (e *Engine) CloseSidebar() {
	e.open = false
}

// nextLineID returns one more than the highest id in use, or 1 for an empty
// cart. Ids are session-local and never reused while their line exists.
func (e *Engine) nextLineID() int64 {
	var max int64
	for _, line := range e.lines {
		if line.ID > max {
			max = line.ID
		}
	}
	return max + 1
}

// Snapshot is the serializable cart state, used for the Redis write-through
// copy and for order submission.
type Snapshot struct {
	Lines        []Line `json:"lines"`
	RestaurantID string `json:"restaurant_id"`
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Lines:        e.Lines(),
		RestaurantID: e.restaurantID,
	}
}

// Restore replaces the engine state with a previously taken snapshot.
func (e *Engine) Restore(s Snapshot) {
	e.lines = make([]Line, len(s.Lines))
	copy(e.lines, s.Lines)
	e.restaurantID = s.RestaurantID
	if len(e.lines) == 0 {
		e.restaurantID = ""
	}
}
