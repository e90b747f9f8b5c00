package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"foodmood-backend/internal/cart"
	"foodmood-backend/internal/repositories"
	"foodmood-backend/pkg/cache"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const cartSnapshotTTL = 24 * time.Hour

// CartService owns the per-user cart sessions. It resolves menu items
// against the catalog, applies them to the session's cart engine, and keeps
// a write-through snapshot in Redis so a session cart survives a restart.
type CartService struct {
	store          *cart.Store
	menuItemRepo   repositories.MenuItemRepository
	restaurantRepo repositories.RestaurantRepository
	cache          *cache.RedisCache

	mu       sync.Mutex
	hydrated map[string]bool
}

func NewCartService(
	store *cart.Store,
	menuItemRepo repositories.MenuItemRepository,
	restaurantRepo repositories.RestaurantRepository,
	cache *cache.RedisCache,
) *CartService {
	return &CartService{
		store:          store,
		menuItemRepo:   menuItemRepo,
		restaurantRepo: restaurantRepo,
		cache:          cache,
		hydrated:       make(map[string]bool),
	}
}

// CartView is the cart state plus derived pricing, recomputed from the
// current lines on every request. Amounts are fixed to two decimal places.
type CartView struct {
	Lines          []cart.Line `json:"lines"`
	RestaurantID   string      `json:"restaurant_id,omitempty"`
	RestaurantName string      `json:"restaurant_name,omitempty"`
	Subtotal       string      `json:"subtotal"`
	DeliveryFee    string      `json:"delivery_fee"`
	Tax            string      `json:"tax"`
	Total          string      `json:"total"`
	Open           bool        `json:"open"`
}

// Session returns the user's cart session, rehydrating it from the Redis
// snapshot the first time it is seen after a process start.
func (s *CartService) Session(ctx context.Context, userID string) *cart.Session {
	session := s.store.Session(userID)

	s.mu.Lock()
	seen := s.hydrated[userID]
	s.hydrated[userID] = true
	s.mu.Unlock()

	if !seen && s.cache != nil {
		var snap cart.Snapshot
		if err := s.cache.Get(ctx, cartSnapshotKey(userID), &snap); err == nil {
			session.Do(func(e *cart.Engine) {
				if e.IsEmpty() {
					e.Restore(snap)
				}
			})
		}
	}

	return session
}

// AddItem resolves the menu item and adds it to the user's cart. When the
// cart already holds another restaurant's items the add fails with
// cart.ErrDifferentRestaurant unless replace is set, which swaps the whole
// cart over to the new restaurant.
func (s *CartService) AddItem(ctx context.Context, userID, menuItemID string, replace bool) (*CartView, error) {
	itemID, err := primitive.ObjectIDFromHex(menuItemID)
	if err != nil {
		return nil, errors.New("invalid menu item ID")
	}

	item, err := s.menuItemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("menu item not found: %w", err)
	}

	price, err := decimal.NewFromString(item.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, item.Price)
	}

	restaurantID, err := uuid.Parse(item.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("menu item %s has invalid restaurant reference %q", menuItemID, item.RestaurantID)
	}
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("restaurant not found: %w", err)
	}

	candidate := cart.Candidate{
		MenuItemID:     item.ID.Hex(),
		Name:           item.Name,
		Description:    item.Description,
		Price:          price,
		RestaurantID:   restaurant.ID.String(),
		RestaurantName: restaurant.Name,
	}

	session := s.Session(ctx, userID)
	err = session.DoErr(func(e *cart.Engine) error {
		if replace {
			e.ReplaceWith(candidate)
			return nil
		}
		return e.AddItem(candidate)
	})
	if err != nil {
		return nil, err
	}

	s.SaveSnapshot(ctx, userID)
	return s.view(session), nil
}

func (s *CartService) GetCart(ctx context.Context, userID string) *CartView {
	return s.view(s.Session(ctx, userID))
}

func (s *CartService) IncrementLine(ctx context.Context, userID string, lineID int64) *CartView {
	session := s.Session(ctx, userID)
	session.Do(func(e *cart.Engine) { e.IncrementQuantity(lineID) })
	s.SaveSnapshot(ctx, userID)
	return s.view(session)
}

func (s *CartService) DecrementLine(ctx context.Context, userID string, lineID int64) *CartView {
	session := s.Session(ctx, userID)
	session.Do(func(e *cart.Engine) { e.DecrementQuantity(lineID) })
	s.SaveSnapshot(ctx, userID)
	return s.view(session)
}

func (s *CartService) RemoveLine(ctx context.Context, userID string, lineID int64) *CartView {
	session := s.Session(ctx, userID)
	session.Do(func(e *cart.Engine) { e.RemoveLine(lineID) })
	s.SaveSnapshot(ctx, userID)
	return s.view(session)
}

func (s *CartService) SetInstructions(ctx context.Context, userID string, lineID int64, text string) *CartView {
	session := s.Session(ctx, userID)
	session.Do(func(e *cart.Engine) { e.SetInstructions(lineID, text) })
	s.SaveSnapshot(ctx, userID)
	return s.view(session)
}

// ToggleSidebar flips the cart sidebar visibility flag. UI state only; it is
// session-local and never snapshotted.
func (s *CartService) ToggleSidebar(ctx context.Context, userID string) *CartView {
	session := s.Session(ctx, userID)
	session.Do(func(e *cart.Engine) { e.Toggle() })
	return s.view(session)
}

// CloseSidebar hides the cart sidebar.
func (s *CartService) CloseSidebar(ctx context.Context, userID string) *CartView {
	session := s.Session(ctx, userID)
	session.Do(func(e *cart.Engine) { e.CloseSidebar() })
	return s.view(session)
}

func (s *CartService) Clear(ctx context.Context, userID string) {
	session := s.Session(ctx, userID)
	session.Do(func(e *cart.Engine) { e.Clear() })
	s.SaveSnapshot(ctx, userID)
}

// SaveSnapshot writes the current cart state through to Redis. Best-effort:
// the in-memory engine stays authoritative for the session.
func (s *CartService) SaveSnapshot(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	var snap cart.Snapshot
	s.store.Session(userID).Do(func(e *cart.Engine) { snap = e.Snapshot() })
	s.cache.Set(ctx, cartSnapshotKey(userID), snap, cartSnapshotTTL)
}

func (s *CartService) view(session *cart.Session) *CartView {
	var v CartView
	session.Do(func(e *cart.Engine) {
		v = CartView{
			Lines:          e.Lines(),
			RestaurantID:   e.RestaurantID(),
			RestaurantName: e.RestaurantName(),
			Subtotal:       e.Subtotal().StringFixed(2),
			DeliveryFee:    e.DeliveryFee().StringFixed(2),
			Tax:            e.Tax().StringFixed(2),
			Total:          e.Total().StringFixed(2),
			Open:           e.IsOpen(),
		}
	})
	if v.Lines == nil {
		v.Lines = []cart.Line{}
	}
	return &v
}

func cartSnapshotKey(userID string) string {
	return "cart:" + userID
}
