// Package geo decodes the fixed-point portal locations found in inventory
// exports and computes great-circle distances between them.
package geo

import (
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used for haversine distances.
const EarthRadiusKm = 6371

// Point is a decoded latitude/longitude pair in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// DecodeLocation parses a "lat,lng" pair of 32-bit hex strings into degrees.
// Each half is interpreted as a two's-complement signed integer scaled by
// 1e-6 (e.g. "0000000a,fffffff6" -> 0.00001, -0.00001). Returns nil when
// the separator is missing or either half doesn't parse.
func DecodeLocation(hexPair string) *Point {
	parts := strings.Split(hexPair, ",")
	if len(parts) != 2 {
		return nil
	}

	lat, ok := parseHexE6(parts[0])
	if !ok {
		return nil
	}
	lng, ok := parseHexE6(parts[1])
	if !ok {
		return nil
	}

	return &Point{Lat: lat, Lng: lng}
}

func parseHexE6(s string) (float64, bool) {
	u, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, false
	}
	v := float64(int32(uint32(u))) * 1e-6
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// HaversineKm returns the great-circle distance in kilometers between two
// latitude/longitude points.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// KmToMiles converts kilometers to miles.
func KmToMiles(km float64) float64 {
	return km * 0.621371
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
