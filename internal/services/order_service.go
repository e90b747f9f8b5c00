package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"foodmood-backend/internal/cart"
	"foodmood-backend/internal/models"
	"foodmood-backend/internal/repositories"
	"foodmood-backend/pkg/messaging"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	orderRepo repositories.OrderRepository
	carts     *CartService
	producer  *messaging.KafkaProducer
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	carts *CartService,
	producer *messaging.KafkaProducer,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		carts:     carts,
		producer:  producer,
	}
}

type SubmitOrderRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	Zip           string `json:"zip" binding:"required"`
	Instructions  string `json:"instructions"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cod online"`
}

// SubmitOrder snapshots the user's cart and persists the order with one
// item per cart line, prices frozen at submission time. The order and its
// items are written in a single transaction; the cart is cleared only after
// that transaction commits, so a failed submission can simply be retried.
// At most one submission per session may be in flight.
func (s *OrderService) SubmitOrder(ctx context.Context, userID string, req *SubmitOrderRequest) (*models.Order, error) {
	// identity is checked before any cart or catalog state is touched
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	if req.PaymentMethod != models.PaymentMethodCOD && req.PaymentMethod != models.PaymentMethodOnline {
		return nil, ErrInvalidPaymentMethod
	}

	session := s.carts.Session(ctx, userID)
	if err := session.BeginSubmission(); err != nil {
		return nil, err
	}
	defer session.EndSubmission()

	var snapshot cart.Snapshot
	var total decimal.Decimal
	session.Do(func(e *cart.Engine) {
		snapshot = e.Snapshot()
		total = e.Total()
	})

	if len(snapshot.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	restaurantUUID, err := uuid.Parse(snapshot.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("cart has invalid restaurant reference %q", snapshot.RestaurantID)
	}

	order := &models.Order{
		UserID:          userUUID,
		RestaurantID:    restaurantUUID,
		Status:          models.OrderStatusPending,
		Total:           total,
		DeliveryAddress: formatDeliveryAddress(req),
		PaymentMethod:   req.PaymentMethod,
		CreatedAt:       time.Now(),
	}

	items := make([]models.OrderItem, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		items = append(items, models.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		// cart state is left intact so the user can retry
		return nil, fmt.Errorf("persisting order: %w", err)
	}

	// the transaction committed; clearing the cart is now safe
	session.Do(func(e *cart.Engine) { e.Clear() })
	s.carts.SaveSnapshot(ctx, userID)

	s.publishOrderEvent(ctx, "order_created", order)

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID, userID string) (*models.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.UserID.String() != userID {
		return nil, ErrNotOrderOwner
	}

	return order, nil
}

func (s *OrderService) GetUserOrders(ctx context.Context, userID string, limit, offset int) ([]models.Order, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return s.orderRepo.GetByUserID(ctx, id, limit, offset)
}

func (s *OrderService) GetLatestOrder(ctx context.Context, userID string) (*models.Order, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return s.orderRepo.GetLatestByUserID(ctx, id)
}

// UpdateOrderStatus applies one step of the order status machine:
// pending -> processing -> completed | cancelled. Completed and cancelled
// are terminal.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, newStatus string) (*models.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isValidStatusTransition(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, order.Status, newStatus)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	order.Status = newStatus

	s.publishOrderEvent(ctx, "order_status_updated", order)

	return order, nil
}

// formatDeliveryAddress builds the single-line address stored on the order:
// "street, city, state zip".
func formatDeliveryAddress(req *SubmitOrderRequest) string {
	return fmt.Sprintf("%s, %s, %s %s", req.Address, req.City, req.State, req.Zip)
}

func isValidStatusTransition(current, next string) bool {
	validTransitions := map[string][]string{
		models.OrderStatusPending:    {models.OrderStatusProcessing},
		models.OrderStatusProcessing: {models.OrderStatusCompleted, models.OrderStatusCancelled},
		models.OrderStatusCompleted:  {},
		models.OrderStatusCancelled:  {},
	}

	allowed, exists := validTransitions[current]
	if !exists {
		return false
	}
	for _, status := range allowed {
		if next == status {
			return true
		}
	}
	return false
}

// publishOrderEvent is best-effort: the order is already durable, so a
// broker hiccup must not fail the request.
func (s *OrderService) publishOrderEvent(ctx context.Context, eventType string, order *models.Order) {
	if s.producer == nil {
		return
	}
	event := messaging.OrderEvent{
		Type:    eventType,
		OrderID: order.ID.String(),
		UserID:  order.UserID.String(),
		Data:    order,
	}
	if err := s.producer.SendMessage(ctx, "order_events", order.ID.String(), event); err != nil {
		log.Printf("Failed to publish %s event for order %s: %v", eventType, order.ID, err)
	}
}
