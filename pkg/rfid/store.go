package rfid

import (
	"context"
	"errors"
	"sync"

	"go-jobboard-backend/pkg/logger"
)

// ErrNoTag means no reading has been generated yet.
var ErrNoTag = errors.New("rfid: no tag yet")

// Store holds the latest reading.
type Store interface {
	Save(ctx context.Context, tag Tag) error
	Latest(ctx context.Context) (Tag, error)
}

// MemoryStore keeps the latest reading in process.
type MemoryStore struct {
	mu     sync.RWMutex
	latest *Tag
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, tag Tag) error {
	s.mu.Lock()
	s.latest = &tag
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Latest(_ context.Context) (Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return Tag{}, ErrNoTag
	}
	return *s.latest, nil
}

// FallbackStore reads from primary and falls back to secondary when primary
// fails for any reason other than ErrNoTag.
type FallbackStore struct {
	primary   Store
	secondary Store
}

func NewFallbackStore(primary, secondary Store) *FallbackStore {
	return &FallbackStore{primary: primary, secondary: secondary}
}

// Save writes both stores; a failing primary does not skip the secondary.
func (s *FallbackStore) Save(ctx context.Context, tag Tag) error {
	return errors.Join(s.primary.Save(ctx, tag), s.secondary.Save(ctx, tag))
}

func (s *FallbackStore) Latest(ctx context.Context) (Tag, error) {
	tag, err := s.primary.Latest(ctx)
	if err == nil || errors.Is(err, ErrNoTag) {
		return tag, err
	}
	logger.Log.Warn("RFID primary store unavailable, reading local copy", "error", err)
	return s.secondary.Latest(ctx)
}
