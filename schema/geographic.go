package schema

const (
	CheckpointCollection = "checkpoints"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// CheckpointGeo mirrors a checkpoint's registered coordinates into mongo so
// nearby lookups can use the 2dsphere index.
type CheckpointGeo struct {
	Code     string   `bson:"code"`
	SiteID   uint     `bson:"site_id"`
	Location *GeoJSON `bson:"location"`
}
