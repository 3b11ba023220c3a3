package workload

import (
	"math"
	"math/rand"
)

// earthRadiusMiles is the mean Earth radius in statute miles.
const earthRadiusMiles = 3958.8

// Haversine returns the great-circle distance in miles between two points
// given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// Jitter displaces a point by a random distance up to radiusMiles in a
// random direction, using the spherical destination-point formula. Used to
// scatter pickup and delivery positions around a market center.
func Jitter(rng *rand.Rand, lat, lon, radiusMiles float64) (float64, float64) {
	distance := rng.Float64() * radiusMiles / earthRadiusMiles // angular
	bearing := rng.Float64() * 2 * math.Pi

	latRad := lat * math.Pi / 180
	lonRad := lon * math.Pi / 180

	newLatRad := math.Asin(
		math.Sin(latRad)*math.Cos(distance) +
			math.Cos(latRad)*math.Sin(distance)*math.Cos(bearing))
	newLonRad := lonRad + math.Atan2(
		math.Sin(bearing)*math.Sin(distance)*math.Cos(latRad),
		math.Cos(distance)-math.Sin(latRad)*math.Sin(newLatRad))

	return newLatRad * 180 / math.Pi, newLonRad * 180 / math.Pi
}
