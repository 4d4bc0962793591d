package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Place persists an order and its items as a single unit of work:
	// the order row, one row per item in the supplied sequence, and a
	// conditional stock decrement per item. Any failing step rolls back
	// the whole order. A decrement that matches no row (stock too low or
	// product missing) fails with apperrors.ErrInsufficientStock.
	Place(order *models.Order) error

	GetByID(id string) (*models.Order, error)

	// CountItemsByProduct reports how many order items reference a product,
	// used to restrict catalog deletes.
	CountItemsByProduct(productID string) (int64, error)
}
