package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType is the detected transition direction
type EventType string

const (
	EventNone  EventType = "none"
	EventEnter EventType = "enter"
	EventExit  EventType = "exit"
)

// DetectionType records which evaluation path produced a hit
type DetectionType string

const (
	DetectionRealtime DetectionType = "realtime"
	DetectionCatchup  DetectionType = "catchup"
)

// GeofenceHit is one row of the hit ledger: a detected enter/exit transition,
// its suppression status, and whether a notification went out. Rows are
// append-only; only NotificationSent is ever flipped after insert.
type GeofenceHit struct {
	ID                uuid.UUID     `db:"id" json:"id"`
	ZoneID            uuid.UUID     `db:"zone_id" json:"zone_id"`
	UserID            uuid.UUID     `db:"user_id" json:"user_id"`
	SampleID          uuid.UUID     `db:"sample_id" json:"sample_id"`
	EventType         EventType     `db:"event_type" json:"event_type"`
	DistanceMeters    float64       `db:"distance_meters" json:"distance_meters"`
	DetectionType     DetectionType `db:"detection_type" json:"detection_type"`
	TriggeredAt       time.Time     `db:"triggered_at" json:"triggered_at"`
	NotificationSent  bool          `db:"notification_sent" json:"notification_sent"`
	Suppressed        bool          `db:"suppressed" json:"suppressed"`
	SuppressionReason string        `db:"suppression_reason" json:"suppression_reason,omitempty"`
}
