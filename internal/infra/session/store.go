package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

const (
	sessionKeyPrefix = "session:"
	stateKeyPrefix   = "oauth_state:"
)

// Store хранилище сессий и OAuth state в Redis
type Store struct {
	rdb      redis.Cmdable
	ttl      time.Duration
	stateTTL time.Duration
	now      func() time.Time
}

// NewStore создает хранилище
func NewStore(rdb redis.Cmdable, ttl, stateTTL time.Duration) *Store {
	return &Store{
		rdb:      rdb,
		ttl:      ttl,
		stateTTL: stateTTL,
		now:      time.Now,
	}
}

// Create создает сессию пользователя со случайным токеном
func (s *Store) Create(ctx context.Context, userID string) (*domain.Session, error) {
	token := uuid.NewString()

	if err := s.rdb.Set(ctx, sessionKeyPrefix+token, userID, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("%w: Create - set session: %v", ErrStorage, err)
	}

	return &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: s.now().Add(s.ttl),
	}, nil
}

// Get возвращает ID пользователя по токену
func (s *Store) Get(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrSessionNotFound
	}

	userID, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - get session: %v", ErrStorage, err)
	}
	return userID, nil
}

// Delete удаляет сессию. Удаление несуществующей сессии не ошибка.
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del session: %v", ErrStorage, err)
	}
	return nil
}

// CreateState создает одноразовый OAuth state
func (s *Store) CreateState(ctx context.Context) (string, error) {
	state := uuid.NewString()

	if err := s.rdb.Set(ctx, stateKeyPrefix+state, "1", s.stateTTL).Err(); err != nil {
		return "", fmt.Errorf("%w: CreateState - set state: %v", ErrStorage, err)
	}
	return state, nil
}

// ConsumeState проверяет и удаляет OAuth state
func (s *Store) ConsumeState(ctx context.Context, state string) error {
	if state == "" {
		return ErrStateNotFound
	}

	_, err := s.rdb.GetDel(ctx, stateKeyPrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return ErrStateNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: ConsumeState - getdel state: %v", ErrStorage, err)
	}
	return nil
}
