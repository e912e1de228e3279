package constants

// Redis key formats
const (
	KeyVehicleLocation = "vehicle:location:%s" // Format: vehicle:location:{vehicle_id}
	KeyFleetGeo        = "fleet:geo"           // Geo set of all vehicle positions
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldAddress   = "address"
	FieldGeohash   = "geohash"
	FieldUpdatedAt = "updated_at"
)
