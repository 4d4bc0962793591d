package handlers

import (
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
}

// CreateOrderRequest represents the checkout request body.
type CreateOrderRequest struct {
	UserID  *string          `json:"user_id"`
	Items   []OrderItemInput `json:"items"`
	Total   float64          `json:"total"`
	Payment map[string]any   `json:"payment"`
}

// OrderItemInput is one purchased line in the checkout request.
type OrderItemInput struct {
	ProductID string  `json:"product_id"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// HandleCreateOrder places an order. An empty items list is allowed and
// creates an order with no line items.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Qty,
			UnitPrice: it.Price,
		})
	}

	order, err := h.service.PlaceOrder(services.PlaceOrderInput{
		UserID:  req.UserID,
		Items:   items,
		Total:   req.Total,
		Payment: req.Payment,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true, "order": order})
}
