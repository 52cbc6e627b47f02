package domain

import "math"

const EarthRadiusKm = 6371.0

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the great-circle distance in kilometers between two
// points using the spherical law of cosines. NaN inputs yield NaN.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	cos := math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Cos(radians(lon2)-radians(lon1)) +
		math.Sin(radians(lat1))*math.Sin(radians(lat2))
	// rounding can push identical points slightly above 1
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return EarthRadiusKm * math.Acos(cos)
}

func WithinRadius(lat1, lon1, lat2, lon2, radiusKm float64) bool {
	return Distance(lat1, lon1, lat2, lon2) <= radiusKm
}
