package constants

import "time"

// Redis cache keys and TTLs
const (
	KeySubjectCatalog  = "tutors:subjects"
	KeyTutorSearchBase = "tutors:search:" // + filter fingerprint

	// Webhook notification ids already applied; used to short-circuit
	// duplicate provider deliveries
	KeyWebhookSeenBase = "payments:webhook:seen:" // + payment id + ":" + fetched status

	CacheTTLSubjects    = 5 * time.Minute
	CacheTTLTutorSearch = 1 * time.Minute
	TTLWebhookSeen      = 24 * time.Hour
)
