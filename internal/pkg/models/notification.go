package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPayload is the single payload shape handed to the dispatch
// boundary. The engine never depends on any particular delivery channel.
type NotificationPayload struct {
	Title string           `json:"title"`
	Body  string           `json:"body"`
	Data  NotificationData `json:"data"`
}

// NotificationData carries the hit context for the delivery subsystem
type NotificationData struct {
	ZoneID    uuid.UUID `json:"zone_id"`
	EventType EventType `json:"event_type"`
	HitID     uuid.UUID `json:"hit_id"`
}

// DispatchResult is the reply expected from the delivery subsystem
type DispatchResult struct {
	Delivered int `json:"delivered"`
}

// HitEvent is the audit event published for every recorded hit
type HitEvent struct {
	HitID         uuid.UUID     `json:"hit_id"`
	ZoneID        uuid.UUID     `json:"zone_id"`
	UserID        uuid.UUID     `json:"user_id"`
	Tenant        string        `json:"tenant"`
	EventType     EventType     `json:"event_type"`
	DetectionType DetectionType `json:"detection_type"`
	Suppressed    bool          `json:"suppressed"`
	TriggeredAt   time.Time     `json:"triggered_at"`
}
