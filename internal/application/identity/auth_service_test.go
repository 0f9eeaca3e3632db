package identity

import (
	"context"
	"testing"
	"time"

	"github.com/finopenpos/backend/internal/domain/identity"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/finopenpos/backend/internal/infrastructure/auth"
	"github.com/finopenpos/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newAuthService(repo *MockUserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-for-unit-tests",
		TokenExpiration: time.Hour,
		Issuer:          "finopenpos-test",
	})
	return NewAuthService(repo, jwtService, zap.NewNop())
}

func TestAuthService_Login(t *testing.T) {
	t.Run("issues token for valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)

		user, err := identity.NewUser("admin@tienda.mx", "Admin", "correct-password", identity.RoleAdmin)
		require.NoError(t, err)

		repo.On("FindByEmail", mock.Anything, "admin@tienda.mx").Return(user, nil)

		resp, err := service.Login(context.Background(), LoginRequest{
			Email:    "Admin@Tienda.MX",
			Password: "correct-password",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "admin@tienda.mx", resp.User.Email)
		assert.Equal(t, "admin", resp.User.Role)
		assert.True(t, resp.ExpiresAt.After(time.Now()))
	})

	t.Run("same error for unknown email and wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)

		user, err := identity.NewUser("admin@tienda.mx", "Admin", "correct-password", identity.RoleAdmin)
		require.NoError(t, err)

		repo.On("FindByEmail", mock.Anything, "admin@tienda.mx").Return(user, nil)
		repo.On("FindByEmail", mock.Anything, "nobody@tienda.mx").Return(nil, shared.ErrNotFound)

		_, errWrongPassword := service.Login(context.Background(), LoginRequest{
			Email:    "admin@tienda.mx",
			Password: "wrong-password",
		})
		_, errUnknownEmail := service.Login(context.Background(), LoginRequest{
			Email:    "nobody@tienda.mx",
			Password: "whatever-1234",
		})

		require.Error(t, errWrongPassword)
		require.Error(t, errUnknownEmail)
		assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	})

	t.Run("rejects deactivated account", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)

		user, err := identity.NewUser("cajero@tienda.mx", "Cajero", "correct-password", identity.RoleCashier)
		require.NoError(t, err)
		user.Deactivate()

		repo.On("FindByEmail", mock.Anything, "cajero@tienda.mx").Return(user, nil)

		resp, err := service.Login(context.Background(), LoginRequest{
			Email:    "cajero@tienda.mx",
			Password: "correct-password",
		})

		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_INACTIVE", domainErr.Code)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("changes password when old password matches", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)

		user, err := identity.NewUser("admin@tienda.mx", "Admin", "old-password-1", identity.RoleAdmin)
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		err = service.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
			OldPassword: "old-password-1",
			NewPassword: "new-password-1",
		})

		require.NoError(t, err)
		assert.True(t, user.CheckPassword("new-password-1"))
		repo.AssertExpectations(t)
	})

	t.Run("rejects wrong old password", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)

		user, err := identity.NewUser("admin@tienda.mx", "Admin", "old-password-1", identity.RoleAdmin)
		require.NoError(t, err)

		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		err = service.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
			OldPassword: "not-the-password",
			NewPassword: "new-password-1",
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("refuses self-deletion", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewUserService(repo)
		userID := uuid.New()

		err := service.Delete(context.Background(), userID, userID)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("deletes another user", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewUserService(repo)
		actorID := uuid.New()
		userID := uuid.New()

		repo.On("Delete", mock.Anything, userID).Return(nil)

		err := service.Delete(context.Background(), actorID, userID)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestUserService_Create(t *testing.T) {
	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewUserService(repo)

		existing, err := identity.NewUser("admin@tienda.mx", "Admin", "password-123", identity.RoleAdmin)
		require.NoError(t, err)

		repo.On("FindByEmail", mock.Anything, "admin@tienda.mx").Return(existing, nil)

		resp, err := service.Create(context.Background(), CreateUserRequest{
			Email:    "admin@tienda.mx",
			Name:     "Another Admin",
			Password: "password-456",
			Role:     "admin",
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("creates cashier account", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewUserService(repo)

		repo.On("FindByEmail", mock.Anything, "cajero@tienda.mx").Return(nil, shared.ErrNotFound)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := service.Create(context.Background(), CreateUserRequest{
			Email:    "cajero@tienda.mx",
			Name:     "Cajero",
			Password: "password-123",
			Role:     "cashier",
		})

		require.NoError(t, err)
		assert.Equal(t, "cashier", resp.Role)
		repo.AssertExpectations(t)
	})
}
