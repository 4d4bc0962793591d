package repositories

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Search retrieves products matching the name substring, newest first.
// lower(name) LIKE works the same on Postgres and SQLite; ILIKE would not.
func (r *GORMProductRepository) Search(query string, limit int) ([]models.Product, error) {
	var products []models.Product
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.
		Where("lower(name) LIKE ?", pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.Attributes == nil {
		product.Attributes = map[string]string{}
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites all mutable fields of an existing product. Last writer
// wins; there is no optimistic concurrency check.
func (r *GORMProductRepository) Update(product *models.Product) error {
	if product.Attributes == nil {
		product.Attributes = map[string]string{}
	}
	res := r.db.Model(&models.Product{}).Where("id = ?", product.ID).
		Select("name", "sku", "price", "category", "quantity", "image_url", "attributes").
		Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM does not return ErrRecordNotFound for an update that matched
		// no rows, so we check RowsAffected.
		return fmt.Errorf("product with ID %s: %w", product.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database. The delete is
// unconditional: removing an id that does not exist is not an error.
func (r *GORMProductRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
