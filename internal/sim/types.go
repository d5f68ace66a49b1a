package sim

import "math"

// Sample is the flight state at one sampled instant.
type Sample struct {
	Time         float64
	Mass         float64
	Height       float64
	Velocity     float64
	Acceleration float64
}

func (s Sample) IsValid() bool {
	for _, v := range [...]float64{s.Time, s.Mass, s.Height, s.Velocity, s.Acceleration} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Integrator advances velocity and height. cur carries the time, mass and
// acceleration sampled for the new step.
type Integrator interface {
	Step(prev, cur Sample, dt float64) Sample
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(step int, s Sample)
}

type Config struct {
	MaxSteps int
}

const DefaultMaxSteps = 10_000_000

func DefaultConfig() Config {
	return Config{MaxSteps: DefaultMaxSteps}
}
