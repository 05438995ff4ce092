// Package shipping holds the pure delivery-cost model: great-circle
// distance between two coordinates and the per-kilometer rate charged
// from the fixed pickup point.
package shipping

import "math"

// EarthRadiusKm is the Earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// CostPerKm is the delivery rate in currency units per kilometer
const CostPerKm = 0.1724

// BaseFee is the flat fee added to every delivery quote
const BaseFee = 2.0

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64
	Lon float64
}

// Haversine returns the great-circle distance in kilometers between two
// coordinate pairs.
func Haversine(a, b Coordinates) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	deltaLat := radians(b.Lat - a.Lat)
	deltaLon := radians(b.Lon - a.Lon)

	h := math.Pow(math.Sin(deltaLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(deltaLon/2), 2)
	c := 2 * math.Asin(math.Sqrt(h))

	return EarthRadiusKm * c
}

// DeliveryCost returns the delivery cost for a distance in kilometers
func DeliveryCost(distanceKm float64) float64 {
	return distanceKm*CostPerKm + BaseFee
}

// Round2 rounds a value to two decimal places, as presented to customers
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
