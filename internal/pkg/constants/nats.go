package constants

// NATS Subjects
const (
	// Per-vehicle realtime channel; remote providers subscribe to one
	// vehicle's subject, the tracking gateway publishes to it.
	SubjectVehicleLocation = "vehicle.location.%s"
)
