package preference

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-console/internal/httperr"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Key is the single stored preference key.
const Key = "theme"

func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ErrNotSet means no theme has been stored yet.
var ErrNotSet = errors.New("theme not set")

type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string) error
}

// ===============================
// Stores
// ===============================

type MemoryStore struct {
	mu    sync.Mutex
	value string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value == "" {
		return "", ErrNotSet
	}
	return s.value, nil
}

func (s *MemoryStore) Set(ctx context.Context, value string) error {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
	return nil
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context) (string, error) {
	v, err := s.client.Get(ctx, Key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotSet
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", Key, err)
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, value string) error {
	if err := s.client.Set(ctx, Key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", Key, err)
	}
	return nil
}

// ===============================
// Service
// ===============================

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Current returns the stored theme when valid, otherwise the client's
// environment preference, otherwise light. envHint is the raw
// Sec-CH-Prefers-Color-Scheme value, possibly empty.
func (s *Service) Current(ctx context.Context, envHint string) Theme {
	if v, err := s.store.Get(ctx); err == nil {
		if t := Theme(v); t.Valid() {
			return t
		}
	}
	return FromHint(envHint)
}

func (s *Service) Set(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return httperr.ErrBusiness("invalid_theme")
	}
	return s.store.Set(ctx, string(t))
}

// Toggle flips the current theme and stores the result.
func (s *Service) Toggle(ctx context.Context, envHint string) (Theme, error) {
	next := s.Current(ctx, envHint).Toggle()
	if err := s.store.Set(ctx, string(next)); err != nil {
		return "", err
	}
	return next, nil
}

// FromHint reads a Sec-CH-Prefers-Color-Scheme value, which may be quoted.
func FromHint(hint string) Theme {
	if strings.EqualFold(strings.Trim(strings.TrimSpace(hint), `"`), string(Dark)) {
		return Dark
	}
	return Light
}
