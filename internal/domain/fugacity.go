package domain

// Vapour pressure band edges for liquids, in pascal.
const (
	vapourPressureLowPa    = 0.01
	vapourPressureMediumPa = 500
	vapourPressureHighPa   = 10000
)

// FugacityFromVapourPressure assigns the volatility band of a liquid from its
// vapour pressure at the operating temperature.
func FugacityFromVapourPressure(pa float64) Fugacity {
	switch {
	case pa < vapourPressureLowPa:
		return FugacityVeryLow
	case pa < vapourPressureMediumPa:
		return FugacityLow
	case pa <= vapourPressureHighPa:
		return FugacityMedium
	default:
		return FugacityHigh
	}
}
