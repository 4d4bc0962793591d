package models

import "time"

// Product represents a catalog item.
// Attributes is an open-ended key/value mapping (e.g. size, color) stored as JSON.
type Product struct {
	ID         string            `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string            `json:"name" gorm:"type:varchar(255)"`
	SKU        string            `json:"sku" gorm:"type:varchar(100)"`
	Price      float64           `json:"price"`
	Category   string            `json:"category" gorm:"type:varchar(100)"`
	Quantity   int               `json:"quantity"`
	ImageURL   string            `json:"image_url" gorm:"type:varchar(500)"`
	Attributes map[string]string `json:"attributes" gorm:"serializer:json"`
	CreatedAt  time.Time         `json:"created_at"`
}
