package constants

// Redis key formats
const (
	// Suppression Store
	KeySuppression = "suppress:%s:%s" // Format: suppress:{user_id}:{zone_id}

	// Presence tracking
	KeyTenantPresence = "presence:geo:%s" // Format: presence:geo:{tenant}, GEO set of last known user positions
)
