package settings

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/finopenpos/backend/internal/domain/settings"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Snapshot is one published state of an owner's POS configuration
type Snapshot struct {
	OwnerID   uuid.UUID       `json:"owner_id"`
	Document  json.RawMessage `json:"document"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Service manages per-owner POS configuration documents and notifies
// in-process subscribers on every update. Reads of an owner with no
// stored document return the default document instead of an error, so
// a fresh account always has a usable configuration.
type Service struct {
	repo   settings.PosConfigRepository
	logger *zap.Logger

	mu   sync.RWMutex
	subs map[int]chan Snapshot
	next int
}

// NewService creates a new settings Service
func NewService(repo settings.PosConfigRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		subs:   make(map[int]chan Snapshot),
	}
}

// Get returns the owner's configuration, falling back to the default
// document when none has been saved yet
func (s *Service) Get(ctx context.Context, ownerID uuid.UUID) (*Snapshot, error) {
	config, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &Snapshot{
				OwnerID:  ownerID,
				Document: json.RawMessage(settings.DefaultDocument),
			}, nil
		}
		return nil, err
	}
	return &Snapshot{
		OwnerID:   config.OwnerID,
		Document:  config.Document,
		UpdatedAt: config.UpdatedAt,
	}, nil
}

// Update atomically replaces the owner's configuration document and
// notifies subscribers
func (s *Service) Update(ctx context.Context, ownerID uuid.UUID, document json.RawMessage) (*Snapshot, error) {
	config := settings.NewPosConfig(ownerID)
	if err := config.Replace(document); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, config); err != nil {
		return nil, err
	}

	snapshot := Snapshot{
		OwnerID:   config.OwnerID,
		Document:  config.Document,
		UpdatedAt: config.UpdatedAt,
	}
	s.publish(snapshot)
	return &snapshot, nil
}

// Subscribe registers a change listener. The returned cancel function
// must be called to release the subscription. Slow subscribers miss
// updates rather than block the writer.
func (s *Service) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan Snapshot, 8)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *Service) publish(snapshot Snapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, ch := range s.subs {
		select {
		case ch <- snapshot:
		default:
			s.logger.Warn("settings subscriber lagging, update dropped",
				zap.Int("subscriber", id),
				zap.String("owner_id", snapshot.OwnerID.String()))
		}
	}
}
