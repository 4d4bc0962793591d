package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Search(query string, limit int) ([]models.Product, error) {
	args := m.Called(query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_Search(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewProductService(mockRepo, mockOrders)

	expected := []models.Product{
		{ID: "1", Name: "Red Shirt", Price: 10.0, Quantity: 100},
		{ID: "2", Name: "Blue Shirt", Price: 20.0, Quantity: 50},
	}

	// The service applies the 500-row cap.
	mockRepo.On("Search", "shirt", 500).Return(expected, nil).Once()

	products, err := service.Search("shirt")
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewProductService(mockRepo, mockOrders)

	expected := &models.Product{ID: "1", Name: "Red Shirt", Price: 10.0, Quantity: 100}

	mockRepo.On("GetByID", "1").Return(expected, nil).Once()
	product, err := service.GetByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.On("GetByID", "99").
		Return(nil, fmt.Errorf("product with ID 99: %w", apperrors.ErrNotFound)).Once()
	product, err = service.GetByID("99")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Create(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewProductService(mockRepo, mockOrders)

	// Negative values pass through: the catalog does no range validation.
	newProduct := &models.Product{Name: "Odd Item", SKU: "ODD-1", Price: -5.0, Quantity: -2}

	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.Create(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Update(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewProductService(mockRepo, mockOrders)

	updated := &models.Product{ID: "1", Name: "Red Shirt v2", Price: 12.0, Quantity: 95}

	mockRepo.On("Update", updated).Return(nil).Once()
	assert.NoError(t, service.Update(updated))

	missing := &models.Product{ID: "99", Name: "Ghost"}
	mockRepo.On("Update", missing).
		Return(fmt.Errorf("product with ID 99: %w", apperrors.ErrNotFound)).Once()
	assert.ErrorIs(t, service.Update(missing), apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Delete(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewProductService(mockRepo, mockOrders)

	mockOrders.On("CountItemsByProduct", "1").Return(int64(0), nil).Once()
	mockRepo.On("Delete", "1").Return(nil).Once()
	assert.NoError(t, service.Delete("1"))
	mockRepo.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestProductService_Delete_RestrictedByOrderItems(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewProductService(mockRepo, mockOrders)

	mockOrders.On("CountItemsByProduct", "1").Return(int64(3), nil).Once()

	err := service.Delete("1")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	// The repository delete must never be reached.
	mockRepo.AssertNotCalled(t, "Delete", "1")
	mockOrders.AssertExpectations(t)
}
