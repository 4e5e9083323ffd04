package servo

// PWM timing for hobby servos on a 16-bit timer.
const (
	// PWMFrequencyHz is the servo control frequency.
	PWMFrequencyHz = 50
	// PWMResolutionBits is the timer compare resolution.
	PWMResolutionBits = 16
	// CountLow is the duty count commanding 0 degrees.
	CountLow = 2100
	// CountHigh is the duty count commanding full deflection.
	CountHigh = 7500
	// FullRangeDegrees spans the nominal travel of the mapping.
	FullRangeDegrees = 360
)

// DutyForAngle maps a target angle to a PWM duty count, truncating.
// The mapping is linear and unclamped: out-of-range angles
// extrapolate, and physical limits are the driver's concern.
func DutyForAngle(degrees int) int {
	return (CountHigh-CountLow)*degrees/FullRangeDegrees + CountLow
}

// DegreesForDuty inverts DutyForAngle. Simulated drivers use it to
// recover the commanded angle from a duty count.
func DegreesForDuty(duty int) float64 {
	return float64(duty-CountLow) * FullRangeDegrees / (CountHigh - CountLow)
}
