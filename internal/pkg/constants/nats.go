package constants

// NATS Subjects
const (
	// Notification dispatch: request-reply with the delivery subsystem
	SubjectNotificationDispatch = "notification.dispatch"

	// Hit audit events, fire-and-forget
	SubjectGeofenceHit = "geofence.hit"
)
