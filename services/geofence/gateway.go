package geofence

import (
	"context"

	"github.com/google/uuid"

	"github.com/pratama/zonewatch/internal/pkg/models"
)

// NotifierGW is the boundary to the delivery subsystem. The engine only
// decides whether and with what payload to notify; delivery channels are
// someone else's problem.
type NotifierGW interface {
	// Send dispatches a notification and returns the delivered count.
	// Zero deliveries or an error both mean "not sent".
	Send(ctx context.Context, userID uuid.UUID, payload models.NotificationPayload) (int, error)

	// PublishHitEvent emits the audit event for a recorded hit,
	// fire-and-forget.
	PublishHitEvent(ctx context.Context, event models.HitEvent) error
}
