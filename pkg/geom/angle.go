package geom

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// NormalizeDeg normalizes an angle in degrees into [0, 360).
func NormalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// NormalizeRad normalizes an angle in radians into [0, 2π).
func NormalizeRad(rad float64) float64 {
	r := math.Mod(rad, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// ShortestDeg normalizes an angle delta in degrees into (-180, 180].
func ShortestDeg(deg float64) float64 {
	d := math.Mod(deg, 360.0)
	if d > 180.0 {
		d -= 360.0
	}
	if d <= -180.0 {
		d += 360.0
	}
	return d
}
