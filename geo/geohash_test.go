package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 {
	return &v
}

func TestEncode(t *testing.T) {
	// reference point from the original geohash paper examples
	hash, err := Encode(f(57.64911), f(10.40744), 7)
	assert.NoError(t, err)
	assert.Equal(t, "u4pruyd", hash)

	hash, err = Encode(f(57.64911), f(10.40744), 11)
	assert.NoError(t, err)
	assert.Equal(t, "u4pruydqqvj", hash)
}

func TestEncodeLength(t *testing.T) {
	for p := 1; p <= 12; p++ {
		hash, err := Encode(f(-1.2921), f(36.8219), p)
		assert.NoError(t, err)
		assert.Len(t, hash, p)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	first, err := Encode(f(-1.2921), f(36.8219), 7)
	assert.NoError(t, err)

	second, err := Encode(f(-1.2921), f(36.8219), 7)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeMissingCoordinate(t *testing.T) {
	hash, err := Encode(nil, f(36.8), 7)
	assert.NoError(t, err)
	assert.Empty(t, hash)

	hash, err = Encode(f(-1.29), nil, 7)
	assert.NoError(t, err)
	assert.Empty(t, hash)
}

func TestEncodeOutOfRange(t *testing.T) {
	_, err := Encode(f(91), f(0), 7)
	assert.Equal(t, ErrLatitudeOutOfRange, err)

	_, err = Encode(f(0), f(181), 7)
	assert.Equal(t, ErrLongitudeOutOfRange, err)

	_, err = Encode(f(0), f(0), 0)
	assert.Equal(t, ErrInvalidPrecision, err)
}
