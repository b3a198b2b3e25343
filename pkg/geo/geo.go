package geo

import (
	"errors"
	"math"
	"math/rand/v2"
)

const earthRadiusKm = 6371.0

var ErrInvalidLocation = errors.New("invalid location")

type Point struct {
	Lat float64
	Lng float64
}

func Validate(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return ErrInvalidLocation
	}
	if lng < -180 || lng > 180 {
		return ErrInvalidLocation
	}
	return nil
}

// Haversine returns the great-circle distance between two points in kilometers.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Mask returns a synthetic point at a random bearing and distance from origin,
// bounded by maxKm. Uses math/rand: the masking hides true positions from the
// UI, it is not a cryptographic control. The result is never persisted.
func Mask(origin Point, maxKm float64) Point {
	bearing := rand.Float64() * 2 * math.Pi
	distance := maxKm * (0.2 + 0.8*rand.Float64())

	latRad := origin.Lat * math.Pi / 180
	angular := distance / earthRadiusKm

	maskedLat := math.Asin(math.Sin(latRad)*math.Cos(angular) +
		math.Cos(latRad)*math.Sin(angular)*math.Cos(bearing))
	maskedLng := origin.Lng*math.Pi/180 + math.Atan2(
		math.Sin(bearing)*math.Sin(angular)*math.Cos(latRad),
		math.Cos(angular)-math.Sin(latRad)*math.Sin(maskedLat),
	)

	return Point{
		Lat: maskedLat * 180 / math.Pi,
		Lng: maskedLng * 180 / math.Pi,
	}
}
