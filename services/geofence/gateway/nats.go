package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pratama/zonewatch/internal/pkg/constants"
	natspkg "github.com/pratama/zonewatch/internal/pkg/nats"
	"github.com/pratama/zonewatch/services/geofence"

	"github.com/pratama/zonewatch/internal/pkg/models"
)

const defaultRequestTimeout = 5 * time.Second

type notifierGW struct {
	client         *natspkg.Client
	requestTimeout time.Duration
}

// NewNotifierGW creates the notification dispatch gateway. Dispatch is a
// NATS request-reply with the delivery subsystem; the reply carries the
// delivered count. Every request is bounded by requestTimeout even when the
// caller's context has no deadline, so an unresponsive dispatcher can never
// wedge an evaluation pass.
func NewNotifierGW(client *natspkg.Client, requestTimeout time.Duration) geofence.NotifierGW {
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	return &notifierGW{client: client, requestTimeout: requestTimeout}
}

type dispatchRequest struct {
	UserID  uuid.UUID                  `json:"user_id"`
	Payload models.NotificationPayload `json:"payload"`
}

// Send dispatches a notification and returns the delivered count
func (g *notifierGW) Send(ctx context.Context, userID uuid.UUID, payload models.NotificationPayload) (int, error) {
	data, err := json.Marshal(dispatchRequest{UserID: userID, Payload: payload})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal dispatch request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	reply, err := g.client.Request(ctx, constants.SubjectNotificationDispatch, data)
	if err != nil {
		return 0, fmt.Errorf("notification dispatch failed: %w", err)
	}

	var result models.DispatchResult
	if err := json.Unmarshal(reply, &result); err != nil {
		return 0, fmt.Errorf("failed to decode dispatch reply: %w", err)
	}

	return result.Delivered, nil
}

// PublishHitEvent emits the audit event for a recorded hit
func (g *notifierGW) PublishHitEvent(ctx context.Context, event models.HitEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal hit event: %w", err)
	}

	return g.client.Publish(constants.SubjectGeofenceHit, data)
}
