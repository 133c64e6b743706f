package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// degreesForMeters converts a distance along the equator to a longitude
// offset in degrees.
func degreesForMeters(meters float64) float64 {
	return meters / earthRadius * 180 / math.Pi
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 100, Distance(0, 0, 0, degreesForMeters(100)), 1e-6)

	// two points in Nairobi roughly 3.4km apart
	d := Distance(-1.2921, 36.8219, -1.3218, 36.8148)
	assert.InDelta(t, 3400, d, 200)
}

func TestVerifyLocationBoundary(t *testing.T) {
	within := degreesForMeters(99.99)
	beyond := degreesForMeters(101)

	assert.True(t, VerifyLocation(0, 0, f(0), f(within), 100))
	assert.False(t, VerifyLocation(0, 0, f(0), f(beyond), 100))
}

func TestVerifyLocationMissingCoordinates(t *testing.T) {
	assert.False(t, VerifyLocation(0, 0, nil, nil, 100))
	assert.False(t, VerifyLocation(0, 0, f(0.001), nil, 100))
	assert.False(t, VerifyLocation(0, 0, nil, f(0.001), 100))
}

func TestVerifyLocationAtCheckpoint(t *testing.T) {
	assert.True(t, VerifyLocation(1.0, 1.0, f(1.0), f(1.0), 50))
	assert.True(t, VerifyLocation(1.0, 1.0, f(1.0003), f(1.0), 50))
}
