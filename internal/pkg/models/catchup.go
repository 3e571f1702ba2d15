package models

import "time"

// RunStatus is the terminal state of a catch-up run
type RunStatus string

const (
	RunStatusIdle    RunStatus = "idle"
	RunStatusSuccess RunStatus = "success"
	RunStatusError   RunStatus = "error"
)

// RunStats summarizes one catch-up run
type RunStats struct {
	SamplesProcessed int `json:"samples_processed"`
	HitsDetected     int `json:"hits_detected"`
	Batches          int `json:"batches"`
}

// SchedulerStatus is the snapshot returned by the status endpoint
type SchedulerStatus struct {
	IsRunning     bool      `json:"is_running"`
	LastRunTime   time.Time `json:"last_run_time,omitempty"`
	LastRunStatus RunStatus `json:"last_run_status"`
	LastError     string    `json:"last_error,omitempty"`
	NextRunTime   time.Time `json:"next_run_time,omitempty"`
}

// NearbyUser is one entry of a presence radius query
type NearbyUser struct {
	UserID     string  `json:"user_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
	Geohash    string  `json:"geohash"`
}
