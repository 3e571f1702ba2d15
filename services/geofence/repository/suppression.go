package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pratama/zonewatch/internal/pkg/constants"
	"github.com/pratama/zonewatch/internal/pkg/database"
	"github.com/pratama/zonewatch/services/geofence"
)

type suppressionRepo struct {
	redisClient *database.RedisClient
}

// NewSuppressionRepository creates the suppression store backed by Redis.
// Cooldown windows map directly onto key TTLs, so expired records are swept
// by Redis itself. A missing key always means "not suppressed".
func NewSuppressionRepository(redisClient *database.RedisClient) geofence.SuppressionRepo {
	return &suppressionRepo{redisClient: redisClient}
}

// IsSuppressed reports whether a live cooldown window exists for the pair
func (r *suppressionRepo) IsSuppressed(ctx context.Context, userID, zoneID uuid.UUID) (bool, error) {
	key := fmt.Sprintf(constants.KeySuppression, userID, zoneID)

	exists, err := r.redisClient.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check suppression: %w", err)
	}

	return exists, nil
}

// Suppress upserts the cooldown window for the pair
func (r *suppressionRepo) Suppress(ctx context.Context, userID, zoneID uuid.UUID, window time.Duration) error {
	if window <= 0 {
		return nil
	}

	key := fmt.Sprintf(constants.KeySuppression, userID, zoneID)
	if err := r.redisClient.Set(ctx, key, "1", window); err != nil {
		return fmt.Errorf("failed to set suppression window: %w", err)
	}

	return nil
}
