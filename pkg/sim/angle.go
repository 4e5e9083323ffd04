package sim

import "math"

// AngleFromDegrees creates a normalized Angle from degrees.
func AngleFromDegrees(d float64) Angle {
	return Angle(normalizeRadians(d * math.Pi / 180.0))
}

// AddDegrees rotates the angle, wrapping at half a turn. Joint
// directions accumulate along a chain without unbounded growth.
func (a Angle) AddDegrees(d float64) Angle {
	return Angle(normalizeRadians(float64(a) + d*math.Pi/180.0))
}

// Degrees gets the angle in degrees, in (-180, 180].
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Project projects a distance along the angle into X and Y.
func (a Angle) Project(dist float64) Pos2D {
	return Pos2D{
		X: dist * math.Cos(float64(a)),
		Y: dist * math.Sin(float64(a)),
	}
}

// normalizeRadians wraps into (-Pi, Pi].
func normalizeRadians(r float64) float64 {
	if r >= 2*math.Pi || r <= -2*math.Pi {
		r = math.Remainder(r, 2*math.Pi)
	}
	if r > math.Pi {
		r -= 2 * math.Pi
	} else if r < -math.Pi {
		r += 2 * math.Pi
	}
	return r
}
