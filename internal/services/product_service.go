package services

import (
	"fmt"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// MaxSearchResults caps catalog searches; there is no pagination cursor.
const MaxSearchResults = 500

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	orderRepo repositories.OrderRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, orderRepo repositories.OrderRepository) *ProductService {
	return &ProductService{
		repo:      repo,
		orderRepo: orderRepo,
	}
}

// Search retrieves products matching the name substring, newest first.
// An empty query matches all products.
func (s *ProductService) Search(query string) ([]models.Product, error) {
	return s.repo.Search(query, MaxSearchResults)
}

// GetByID retrieves a single product by its ID.
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Create creates a new product. Field values are stored as supplied; the
// catalog does no range validation.
func (s *ProductService) Create(product *models.Product) error {
	return s.repo.Create(product)
}

// Update overwrites all mutable fields of a product by id.
func (s *ProductService) Update(product *models.Product) error {
	return s.repo.Update(product)
}

// Delete deletes a product by its ID. A product still referenced by order
// items cannot be deleted: order history must not dangle.
func (s *ProductService) Delete(id string) error {
	count, err := s.orderRepo.CountItemsByProduct(id)
	if err != nil {
		return fmt.Errorf("failed to check order references: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("product %s is referenced by %d order item(s): %w", id, count, apperrors.ErrConflict)
	}
	return s.repo.Delete(id)
}
