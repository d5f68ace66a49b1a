package physics

import (
	"math"
)

// Params holds the construction inputs of a Rocket. Masses are in grams,
// consumption in grams per second and thrust in Newtons.
type Params struct {
	DryMass         float64
	PropellantMass  float64
	ConsumptionRate float64
	Thrust          float64
	TimeStep        float64
	Gravity         float64
	InitialTime     float64
	InitialHeight   float64
}

// NewParams returns Params with the default time step, gravity and a launch
// from the ground at t=0.
func NewParams(dryMass, propellantMass, consumptionRate, thrust float64) Params {
	return Params{
		DryMass:         dryMass,
		PropellantMass:  propellantMass,
		ConsumptionRate: consumptionRate,
		Thrust:          thrust,
		TimeStep:        DefaultTimeStep,
		Gravity:         DefaultGravity,
	}
}

func (p Params) validate() error {
	named := []struct {
		name  string
		value float64
	}{
		{"dry mass", p.DryMass},
		{"propellant mass", p.PropellantMass},
		{"consumption rate", p.ConsumptionRate},
		{"thrust", p.Thrust},
		{"time step", p.TimeStep},
		{"gravity", p.Gravity},
		{"initial time", p.InitialTime},
		{"initial height", p.InitialHeight},
	}
	for _, n := range named {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return &ParameterError{Name: n.name, Value: n.value, Reason: "must be finite"}
		}
	}

	for _, n := range named[:4] {
		if n.value < 0 {
			return &ParameterError{Name: n.name, Value: n.value, Reason: "must be non-negative"}
		}
	}
	if p.TimeStep <= 0 {
		return &ParameterError{Name: "time step", Value: p.TimeStep, Reason: "must be positive"}
	}
	if p.InitialHeight < 0 {
		return &ParameterError{Name: "initial height", Value: p.InitialHeight, Reason: "must be non-negative"}
	}
	return nil
}

// Rocket is the physical state of one vehicle in vertical flight. It is not
// safe for concurrent use; one simulation run owns it.
type Rocket struct {
	params Params

	time         float64
	mass         float64
	velocity     float64
	acceleration float64
	height       float64
	exhausted    bool
}

func New(p Params) (*Rocket, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Rocket{
		params:    p,
		time:      p.InitialTime,
		mass:      p.DryMass + p.PropellantMass,
		height:    p.InitialHeight,
		exhausted: p.PropellantMass == 0,
	}, nil
}

// CurrentTotalMass recomputes the mass from the elapsed time while propellant
// remains. The result never drops below the dry mass; reaching it is final.
func (r *Rocket) CurrentTotalMass() float64 {
	if r.exhausted {
		return r.mass
	}

	m := r.params.DryMass + (r.params.PropellantMass - r.params.ConsumptionRate*r.time)
	if m <= r.params.DryMass {
		m = r.params.DryMass
		r.exhausted = true
	}
	r.mass = m
	return r.mass
}

// InstantaneousAcceleration is net force over mass while powered and the
// configured gravity once the propellant is gone.
func (r *Rocket) InstantaneousAcceleration() float64 {
	if r.exhausted {
		r.acceleration = r.params.Gravity
		return r.acceleration
	}

	r.acceleration = (r.params.Thrust - WeightForce(r.mass)) / InKg(r.mass)
	return r.acceleration
}

func (r *Rocket) AdvanceTime() {
	r.time += r.params.TimeStep
}

// SetMotion stores the kinematic state computed by an integrator.
func (r *Rocket) SetMotion(velocity, height float64) {
	r.velocity = velocity
	r.height = height
}

func (r *Rocket) ElapsedTime() float64  { return r.time }
func (r *Rocket) Mass() float64         { return r.mass }
func (r *Rocket) Velocity() float64     { return r.velocity }
func (r *Rocket) Acceleration() float64 { return r.acceleration }
func (r *Rocket) Height() float64       { return r.height }
func (r *Rocket) TimeStep() float64     { return r.params.TimeStep }
func (r *Rocket) DryMass() float64      { return r.params.DryMass }
func (r *Rocket) Gravity() float64      { return r.params.Gravity }
func (r *Rocket) Exhausted() bool       { return r.exhausted }
func (r *Rocket) Params() Params        { return r.params }

// BurnTime is how long the propellant lasts at the configured rate.
func (r *Rocket) BurnTime() float64 {
	if r.params.ConsumptionRate == 0 {
		if r.params.PropellantMass == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return r.params.PropellantMass / r.params.ConsumptionRate
}

// ThrustToWeight is the lift-off ratio of thrust to fully fuelled weight.
func (r *Rocket) ThrustToWeight() float64 {
	w := WeightForce(r.params.DryMass + r.params.PropellantMass)
	if w == 0 {
		return math.Inf(1)
	}
	return r.params.Thrust / w
}

func (r *Rocket) GetParams() map[string]float64 {
	return map[string]float64{
		"dry_mass":         r.params.DryMass,
		"propellant_mass":  r.params.PropellantMass,
		"consumption_rate": r.params.ConsumptionRate,
		"thrust":           r.params.Thrust,
		"dt":               r.params.TimeStep,
		"gravity":          r.params.Gravity,
		"initial_time":     r.params.InitialTime,
		"initial_height":   r.params.InitialHeight,
	}
}
