package models

import "time"

// OrderItem is a single purchased line within an order. Its lifetime is
// tied to the owning order; products are only referenced by id.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"index;type:varchar(36)"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"` // price at the time of order, client-supplied
}

// Order represents a checkout. UserID is nil for guest orders. Total is
// the client-supplied amount and is not recomputed from the items.
type Order struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      *string        `json:"user_id" gorm:"type:varchar(36)"`
	Total       float64        `json:"total"`
	PaymentInfo map[string]any `json:"payment_info" gorm:"serializer:json"`
	Status      string         `json:"status" gorm:"type:varchar(50)"` // "pending" on creation
	Items       []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time      `json:"created_at"`
}
