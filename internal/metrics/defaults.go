package metrics

import "github.com/san-kum/rocketsim/internal/sim"

// Defaults returns a fresh set of flight metrics for one run.
func Defaults(dryMass float64) []sim.Metric {
	return []sim.Metric{
		NewApogee(),
		NewMaxSpeed(),
		NewMaxAcceleration(),
		NewBurnoutTime(dryMass),
		NewImpactVelocity(),
	}
}
