package geo

import (
	"fmt"
)

const geohashBase32 = "0123456789bcdefghjkmnpqrstuvwxyz"

var (
	ErrLatitudeOutOfRange  = fmt.Errorf("latitude out of range")
	ErrLongitudeOutOfRange = fmt.Errorf("longitude out of range")
	ErrInvalidPrecision    = fmt.Errorf("invalid geohash precision")
)

// Encode returns the base-32 geohash of a coordinate pair at the given
// precision. A missing coordinate yields an empty string without error, so
// callers can treat the hash as simply absent. Out-of-range input is an
// error.
//
// The encoding is the standard interleaved bisection: longitude and latitude
// intervals are halved alternately (longitude first), each halving emits one
// bit, and every five bits map to one character of the base-32 alphabet.
func Encode(latitude, longitude *float64, precision int) (string, error) {
	if latitude == nil || longitude == nil {
		return "", nil
	}
	if precision <= 0 {
		return "", ErrInvalidPrecision
	}

	lat, lng := *latitude, *longitude
	if lat < -90 || lat > 90 {
		return "", ErrLatitudeOutOfRange
	}
	if lng < -180 || lng > 180 {
		return "", ErrLongitudeOutOfRange
	}

	latMin, latMax := -90.0, 90.0
	lngMin, lngMax := -180.0, 180.0

	hash := make([]byte, 0, precision)
	var bits, acc uint
	even := true // longitude turn

	for len(hash) < precision {
		if even {
			mid := (lngMin + lngMax) / 2
			if lng > mid {
				acc = acc<<1 | 1
				lngMin = mid
			} else {
				acc = acc << 1
				lngMax = mid
			}
		} else {
			mid := (latMin + latMax) / 2
			if lat > mid {
				acc = acc<<1 | 1
				latMin = mid
			} else {
				acc = acc << 1
				latMax = mid
			}
		}
		even = !even

		bits++
		if bits == 5 {
			hash = append(hash, geohashBase32[acc])
			bits = 0
			acc = 0
		}
	}

	return string(hash), nil
}
