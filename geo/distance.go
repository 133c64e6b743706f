package geo

import (
	"math"
)

// earthRadius in meters.
const earthRadius = 6371000.0

// Distance returns the great-circle (haversine) distance in meters between
// two coordinates.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return earthRadius * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// VerifyLocation reports whether an observed coordinate falls within the
// checkpoint geofence. A scan without a GPS fix never verifies; that is a
// negative result, not an error.
func VerifyLocation(checkpointLat, checkpointLng float64, observedLat, observedLng *float64, toleranceMeters float64) bool {
	if observedLat == nil || observedLng == nil {
		return false
	}

	return Distance(checkpointLat, checkpointLng, *observedLat, *observedLng) <= toleranceMeters
}
