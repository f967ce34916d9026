package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHaversineDistanceZero(t *testing.T) {
	d := CalculateHaversineDistance(13.7563, 100.5018, 13.7563, 100.5018)
	assert.Equal(t, 0.0, d)
}

func TestCalculateHaversineDistanceOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is about 111.19 km on a spherical earth.
	d := CalculateHaversineDistance(13.0, 100.5, 14.0, 100.5)
	assert.InDelta(t, 111195, d, 100)
}

func TestCalculateHaversineDistanceShortRange(t *testing.T) {
	// Roughly 111 meters: 0.001 degrees of latitude.
	d := CalculateHaversineDistance(13.7563, 100.5018, 13.7573, 100.5018)
	assert.InDelta(t, 111.2, d, 1)
}

func TestCalculateHaversineDistanceIsSymmetric(t *testing.T) {
	a := CalculateHaversineDistance(13.7563, 100.5018, 18.7883, 98.9853)
	b := CalculateHaversineDistance(18.7883, 98.9853, 13.7563, 100.5018)
	assert.InDelta(t, a, b, 0.000001)
}
