package domain

// Job event types the API publishes
const (
	EventJobCreated = "job.created"
	EventJobUpdated = "job.updated"
	EventJobDeleted = "job.deleted"
)

// IsKnownEventType reports whether t is a recognised event type
func IsKnownEventType(t string) bool {
	switch t {
	case EventJobCreated, EventJobUpdated, EventJobDeleted:
		return true
	}
	return false
}
