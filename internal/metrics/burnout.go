package metrics

import "github.com/san-kum/rocketsim/internal/sim"

// BurnoutTime records the time of the first sample flown on dry mass, -1 if
// the propellant never ran out.
type BurnoutTime struct {
	name    string
	dryMass float64
	time    float64
	seen    bool
}

func NewBurnoutTime(dryMass float64) *BurnoutTime {
	return &BurnoutTime{name: "burnout_time", dryMass: dryMass}
}

func (b *BurnoutTime) Name() string { return b.name }

func (b *BurnoutTime) Observe(s sim.Sample) {
	if b.seen || s.Mass > b.dryMass {
		return
	}
	b.time = s.Time
	b.seen = true
}

func (b *BurnoutTime) Value() float64 {
	if !b.seen {
		return -1
	}
	return b.time
}

func (b *BurnoutTime) Reset() {
	b.time = 0
	b.seen = false
}
