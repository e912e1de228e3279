package constants

// NSQ topics
const (
	TopicLocationHistory = "location-history"
)
