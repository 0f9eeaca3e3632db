package settings

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/finopenpos/backend/internal/domain/settings"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockPosConfigRepository is a mock implementation of settings.PosConfigRepository
type MockPosConfigRepository struct {
	mock.Mock
}

func (m *MockPosConfigRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*settings.PosConfig, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.PosConfig), args.Error(1)
}

func (m *MockPosConfigRepository) Save(ctx context.Context, config *settings.PosConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func TestService_Get(t *testing.T) {
	t.Run("returns default document when none stored", func(t *testing.T) {
		repo := new(MockPosConfigRepository)
		service := NewService(repo, zap.NewNop())
		ownerID := uuid.New()

		repo.On("FindByOwner", mock.Anything, ownerID).Return(nil, shared.ErrNotFound)

		snapshot, err := service.Get(context.Background(), ownerID)

		require.NoError(t, err)
		assert.JSONEq(t, settings.DefaultDocument, string(snapshot.Document))
	})

	t.Run("returns stored document", func(t *testing.T) {
		repo := new(MockPosConfigRepository)
		service := NewService(repo, zap.NewNop())
		ownerID := uuid.New()

		stored := settings.NewPosConfig(ownerID)
		require.NoError(t, stored.Replace(json.RawMessage(`{"company_name":"Tienda Lupita"}`)))

		repo.On("FindByOwner", mock.Anything, ownerID).Return(stored, nil)

		snapshot, err := service.Get(context.Background(), ownerID)

		require.NoError(t, err)
		assert.JSONEq(t, `{"company_name":"Tienda Lupita"}`, string(snapshot.Document))
	})
}

func TestService_Update(t *testing.T) {
	t.Run("persists and returns the new document", func(t *testing.T) {
		repo := new(MockPosConfigRepository)
		service := NewService(repo, zap.NewNop())
		ownerID := uuid.New()

		repo.On("Save", mock.Anything, mock.AnythingOfType("*settings.PosConfig")).Return(nil)

		snapshot, err := service.Update(context.Background(), ownerID, json.RawMessage(`{"printer":"USB"}`))

		require.NoError(t, err)
		assert.JSONEq(t, `{"printer":"USB"}`, string(snapshot.Document))
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid JSON without saving", func(t *testing.T) {
		repo := new(MockPosConfigRepository)
		service := NewService(repo, zap.NewNop())

		snapshot, err := service.Update(context.Background(), uuid.New(), json.RawMessage(`{not json`))

		assert.Error(t, err)
		assert.Nil(t, snapshot)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestService_Subscribe(t *testing.T) {
	t.Run("notifies subscribers on update", func(t *testing.T) {
		repo := new(MockPosConfigRepository)
		service := NewService(repo, zap.NewNop())
		ownerID := uuid.New()

		repo.On("Save", mock.Anything, mock.Anything).Return(nil)

		ch, cancel := service.Subscribe()
		defer cancel()

		_, err := service.Update(context.Background(), ownerID, json.RawMessage(`{"theme":"dark"}`))
		require.NoError(t, err)

		select {
		case snapshot := <-ch:
			assert.Equal(t, ownerID, snapshot.OwnerID)
			assert.JSONEq(t, `{"theme":"dark"}`, string(snapshot.Document))
		case <-time.After(time.Second):
			t.Fatal("expected a settings change notification")
		}
	})

	t.Run("cancelled subscriber receives no more updates", func(t *testing.T) {
		repo := new(MockPosConfigRepository)
		service := NewService(repo, zap.NewNop())

		repo.On("Save", mock.Anything, mock.Anything).Return(nil)

		ch, cancel := service.Subscribe()
		cancel()

		_, err := service.Update(context.Background(), uuid.New(), json.RawMessage(`{}`))
		require.NoError(t, err)

		_, open := <-ch
		assert.False(t, open)
	})

	t.Run("slow subscriber does not block the writer", func(t *testing.T) {
		repo := new(MockPosConfigRepository)
		service := NewService(repo, zap.NewNop())

		repo.On("Save", mock.Anything, mock.Anything).Return(nil)

		_, cancel := service.Subscribe()
		defer cancel()

		// Fill the buffer well past its capacity; Update must not hang
		done := make(chan struct{})
		go func() {
			for i := 0; i < 20; i++ {
				_, err := service.Update(context.Background(), uuid.New(), json.RawMessage(`{}`))
				require.NoError(t, err)
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("publisher blocked on a slow subscriber")
		}
	})
}
