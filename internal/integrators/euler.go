package integrators

import "github.com/san-kum/rocketsim/internal/sim"

// Euler is the explicit fixed-step update used for vertical flight. The
// current step's acceleration drives velocity, and the freshly updated
// velocity drives height.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(prev, cur sim.Sample, dt float64) sim.Sample {
	cur.Velocity = prev.Velocity + cur.Acceleration*dt
	cur.Height = prev.Height + cur.Velocity*dt + 0.5*cur.Acceleration*dt*dt
	return cur
}
