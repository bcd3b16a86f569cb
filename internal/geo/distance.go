// Package geo provides the great-circle distance used for hotel enrichment.
package geo

import "math"

const earthRadiusKm = 6371.0

// Distance computes the haversine distance between two points in km.
// Coordinates are signed degrees. Out-of-range input is not validated;
// the result is whatever the formula yields.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
