package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// LocationSample represents a single reported user position. Samples are
// created by the ingestion boundary; the catch-up evaluator is the only
// writer of ProcessedAt.
type LocationSample struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	UserID         uuid.UUID       `db:"user_id" json:"user_id"`
	Tenant         string          `db:"tenant" json:"tenant"`
	Latitude       float64         `db:"latitude" json:"latitude"`
	Longitude      float64         `db:"longitude" json:"longitude"`
	AccuracyMeters sql.NullFloat64 `db:"accuracy_meters" json:"accuracy_meters,omitempty"`
	RecordedAt     time.Time       `db:"recorded_at" json:"recorded_at"`
	ProcessedAt    sql.NullTime    `db:"processed_at" json:"processed_at,omitempty"`
}
