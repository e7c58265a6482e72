// Package geo holds great-circle helpers used by matching.
package geo

import (
	"math"

	"loadhive/internal/entities"
)

const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine distance in kilometres between two points in decimal degrees.
func DistanceKm(a, b entities.GeoPoint) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// float error can push h slightly above 1 for antipodal points
	h = math.Min(h, 1)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Valid reports whether p lies within latitude/longitude bounds.
func Valid(p entities.GeoPoint) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
