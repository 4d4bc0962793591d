package services

import (
	"encoding/json"
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes order lifecycle events to the message broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// PlaceOrderInput is the checkout request: items in purchase sequence, a
// client-supplied total, and an opaque payment blob. UserID is nil for
// guest checkout.
type PlaceOrderInput struct {
	UserID  *string
	Items   []models.OrderItem
	Total   float64
	Payment map[string]any
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher // optional, nil disables events
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// PlaceOrder creates an order with status "pending" and persists it, its
// items, and the stock decrements as one unit of work. The total is stored
// as supplied and never cross-checked against the line items; an empty item
// list still creates the order. There is no idempotency key, so a retried
// submission creates a second order.
func (s *OrderService) PlaceOrder(input PlaceOrderInput) (*models.Order, error) {
	order := &models.Order{
		ID:          uuid.New().String(),
		UserID:      input.UserID,
		Total:       input.Total,
		PaymentInfo: input.Payment,
		Status:      "pending",
		Items:       input.Items,
	}
	if order.PaymentInfo == nil {
		order.PaymentInfo = map[string]any{}
	}

	if err := s.orderRepo.Place(order); err != nil {
		return nil, err
	}

	s.publishOrderCreated(order)
	return order, nil
}

// GetByID retrieves a single order by its ID.
func (s *OrderService) GetByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// publishOrderCreated emits a best-effort order.created event. Publishing
// failures are logged and never fail the request.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := map[string]any{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.Total,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for order %s: %v", order.ID, err)
		return
	}
	if err := s.publisher.Publish("", "order.created", body); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
	}
}
