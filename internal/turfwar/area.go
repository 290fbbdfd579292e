package turfwar

import "math"

const earthRadiusM = 6371000.0

// PlanarAreaM2 computes the enclosed area of the implicitly closed
// polygon in square meters, using the shoelace formula over an
// equirectangular projection centered on the polygon. Good enough for
// neighborhood-scale turf; no ellipsoidal correction.
func PlanarAreaM2(p Path) float64 {
	if len(p) < 3 {
		return 0
	}

	// Project around the mean latitude so east-west distances are not
	// distorted away from the equator.
	var meanLat float64
	for _, c := range p {
		meanLat += c.Lat
	}
	meanLat = meanLat / float64(len(p)) * math.Pi / 180
	cosLat := math.Cos(meanLat)

	xs := make([]float64, len(p))
	ys := make([]float64, len(p))
	for i, c := range p {
		xs[i] = earthRadiusM * c.Lng * math.Pi / 180 * cosLat
		ys[i] = earthRadiusM * c.Lat * math.Pi / 180
	}

	var sum float64
	for i := range p {
		j := (i + 1) % len(p)
		sum += xs[i]*ys[j] - xs[j]*ys[i]
	}
	return math.Abs(sum) / 2
}
