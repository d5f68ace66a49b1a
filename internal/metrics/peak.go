package metrics

import (
	"math"

	"github.com/san-kum/rocketsim/internal/sim"
)

// Peak tracks the largest value of one sample field.
type Peak struct {
	name    string
	extract func(sim.Sample) float64
	peak    float64
	samples int
}

func newPeak(name string, extract func(sim.Sample) float64) *Peak {
	return &Peak{name: name, extract: extract}
}

// NewApogee tracks the highest altitude reached.
func NewApogee() *Peak {
	return newPeak("apogee", func(s sim.Sample) float64 { return s.Height })
}

func NewMaxSpeed() *Peak {
	return newPeak("max_speed", func(s sim.Sample) float64 { return math.Abs(s.Velocity) })
}

func NewMaxAcceleration() *Peak {
	return newPeak("max_acceleration", func(s sim.Sample) float64 { return s.Acceleration })
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(s sim.Sample) {
	v := p.extract(s)
	if p.samples == 0 || v > p.peak {
		p.peak = v
	}
	p.samples++
}

func (p *Peak) Value() float64 {
	return p.peak
}

func (p *Peak) Reset() {
	p.peak = 0
	p.samples = 0
}
