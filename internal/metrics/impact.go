package metrics

import "github.com/san-kum/rocketsim/internal/sim"

// ImpactVelocity is the velocity of the last observed sample.
type ImpactVelocity struct {
	name     string
	velocity float64
}

func NewImpactVelocity() *ImpactVelocity {
	return &ImpactVelocity{name: "impact_velocity"}
}

func (i *ImpactVelocity) Name() string         { return i.name }
func (i *ImpactVelocity) Observe(s sim.Sample) { i.velocity = s.Velocity }
func (i *ImpactVelocity) Value() float64       { return i.velocity }
func (i *ImpactVelocity) Reset()               { i.velocity = 0 }
