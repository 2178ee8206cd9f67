package confirmation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/warbot/internal/common/clock"
	"github.com/KirkDiggler/warbot/internal/common/uuid"
	"github.com/KirkDiggler/warbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	confirmationKeyPrefix = "confirmation:"
)

// ErrConfirmationNotFound is returned when a confirmation is unknown, expired
// or already consumed
var ErrConfirmationNotFound = errors.New("confirmation not found")

// Config holds configuration for the Redis confirmation repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client        *redis.Client
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// NewRedis creates a new Redis-backed confirmation repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	repo := &redisRepository{
		client:        cfg.RedisClient,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}

	if repo.clock == nil {
		repo.clock = clock.New(nil)
	}

	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.New()
	}

	return repo, nil
}

// CreateConfirmation stores a confirmation that expires after input.TTL
func (r *redisRepository) CreateConfirmation(ctx context.Context, input *CreateConfirmationInput) (*models.Confirmation, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Action == "" {
		return nil, errors.New("action is required")
	}

	if input.TTL <= 0 {
		return nil, errors.New("ttl must be positive")
	}

	now := r.clock.Now()
	confirmation := &models.Confirmation{
		ID:        r.uuidGenerator.NewUUID(),
		Action:    input.Action,
		UserID:    input.UserID,
		SheetName: input.SheetName,
		CreatedAt: now,
		ExpiresAt: now.Add(input.TTL),
	}

	confirmationJSON, err := json.Marshal(confirmation)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal confirmation: %w", err)
	}

	key := confirmationKeyPrefix + confirmation.ID
	if err := r.client.Set(ctx, key, confirmationJSON, input.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store confirmation: %w", err)
	}

	return confirmation, nil
}

// ConsumeConfirmation deletes a confirmation and returns it.
// Redis expiry enforces the TTL; a zero delete count means another handler
// consumed it between our read and delete.
func (r *redisRepository) ConsumeConfirmation(ctx context.Context, input *ConsumeConfirmationInput) (*models.Confirmation, error) {
	if input == nil || input.ID == "" {
		return nil, ErrConfirmationNotFound
	}

	key := confirmationKeyPrefix + input.ID
	confirmationJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrConfirmationNotFound
		}
		return nil, fmt.Errorf("failed to get confirmation: %w", err)
	}

	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to delete confirmation: %w", err)
	}

	if deleted == 0 {
		return nil, ErrConfirmationNotFound
	}

	var confirmation models.Confirmation
	if err := json.Unmarshal([]byte(confirmationJSON), &confirmation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal confirmation: %w", err)
	}

	return &confirmation, nil
}
