package auth

import (
	"context"
	"testing"
	"time"

	"jybooking/internal/domain"
	"jybooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID, role string) (string, error) {
	return "token-" + userID, nil
}

func TestRegister_DefaultsToCustomer(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, stubJWT{})

	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Dana",
		Email:    "  Dana@Example.com ",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.Equal(t, "dana@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestRegister_RejectsAdminSelfAssignment(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, stubJWT{})

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "password123",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, stubJWT{})

	users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{
		ID:           "u1",
		Email:        "dana@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		IsActive:     true,
	}

	t.Run("success", func(t *testing.T) {
		users := new(MockUserRepository)
		service := NewService(users, stubJWT{})
		u := *stored
		users.On("GetByEmail", mock.Anything, "dana@example.com").Return(&u, nil)
		users.On("TouchLastLogin", mock.Anything, "u1", mock.Anything).Return(nil)

		result, err := service.Login(context.Background(), LoginRequest{Email: "dana@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, "token-u1", result.AccessToken)
		assert.Empty(t, result.User.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(MockUserRepository)
		service := NewService(users, stubJWT{})
		u := *stored
		users.On("GetByEmail", mock.Anything, "dana@example.com").Return(&u, nil)

		_, err := service.Login(context.Background(), LoginRequest{Email: "dana@example.com", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		users := new(MockUserRepository)
		service := NewService(users, stubJWT{})
		users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)

		_, err := service.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "password123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		users := new(MockUserRepository)
		service := NewService(users, stubJWT{})
		u := *stored
		u.IsActive = false
		users.On("GetByEmail", mock.Anything, "dana@example.com").Return(&u, nil)

		_, err := service.Login(context.Background(), LoginRequest{Email: "dana@example.com", Password: "password123"})
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})
}
