package services_test

import (
	"fmt"
	"testing"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("GetByEmail", "test@example.com").
		Return(nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := authService.Register("Test User", "test@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "customer", user.Role)
	// The returned projection must never carry the password hash.
	assert.Empty(t, user.Password)

	// The persisted user carries a bcrypt hash, not the plaintext.
	persisted := mockRepo.Calls[1].Arguments.Get(0).(*models.User)
	assert.NotEqual(t, "password123", persisted.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("GetByEmail", "taken@example.com").
		Return(&models.User{ID: "user-1", Email: "taken@example.com"}, nil).Once()

	user, err := authService.Register("Someone", "taken@example.com", "password123")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	secret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, secret)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &models.User{
		ID:       "user-123",
		Name:     "Test User",
		Email:    "test@example.com",
		Password: string(hashed),
		Role:     "customer",
	}
	mockRepo.On("GetByEmail", "test@example.com").Return(stored, nil).Once()

	token, user, err := authService.Login("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-123", user.ID)
	assert.Empty(t, user.Password)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "user-123", claims["id"])
	assert.Equal(t, "Test User", claims["name"])
	assert.Equal(t, "customer", claims["role"])

	// Expiry is 8 hours out.
	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), exp, time.Minute)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &models.User{ID: "user-123", Email: "test@example.com", Password: string(hashed)}
	mockRepo.On("GetByEmail", "test@example.com").Return(stored, nil).Once()

	token, user, err := authService.Login("test@example.com", "wrongpassword")
	assert.Empty(t, token)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("GetByEmail", "missing@example.com").
		Return(nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)).Once()

	token, user, err := authService.Login("missing@example.com", "password123")
	assert.Empty(t, token)
	assert.Nil(t, user)
	// Unknown email maps to the same unauthorized error as a wrong password.
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	secret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, secret)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	stored := &models.User{ID: "user-123", Name: "Test User", Email: "test@example.com", Password: string(hashed), Role: "customer"}
	mockRepo.On("GetByEmail", "test@example.com").Return(stored, nil).Once()

	token, _, err := authService.Login("test@example.com", "password123")
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["id"])

	// A token signed with another secret must be rejected.
	other := services.NewAuthService(mockRepo, "other_secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	// Garbage is rejected too.
	_, err = authService.ValidateToken("not.a.token")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
