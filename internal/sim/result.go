package sim

// Result holds the index-aligned sequences of one run.
type Result struct {
	Times         []float64
	Heights       []float64
	Velocities    []float64
	Accelerations []float64
	Masses        []float64
	Metrics       map[string]float64
	StepsTaken    int
	// BurnoutIndex is the first sample flown on dry mass, -1 if propellant
	// never ran out.
	BurnoutIndex int
}

func newResult(capacity int) *Result {
	return &Result{
		Times:         make([]float64, 0, capacity),
		Heights:       make([]float64, 0, capacity),
		Velocities:    make([]float64, 0, capacity),
		Accelerations: make([]float64, 0, capacity),
		Masses:        make([]float64, 0, capacity),
		Metrics:       make(map[string]float64),
		BurnoutIndex:  -1,
	}
}

func (r *Result) append(s Sample) {
	r.Times = append(r.Times, s.Time)
	r.Heights = append(r.Heights, s.Height)
	r.Velocities = append(r.Velocities, s.Velocity)
	r.Accelerations = append(r.Accelerations, s.Acceleration)
	r.Masses = append(r.Masses, s.Mass)
}

func (r *Result) Len() int { return len(r.Times) }

func (r *Result) Sample(i int) Sample {
	return Sample{
		Time:         r.Times[i],
		Mass:         r.Masses[i],
		Height:       r.Heights[i],
		Velocity:     r.Velocities[i],
		Acceleration: r.Accelerations[i],
	}
}

// Final returns the last sample, the first one below ground.
func (r *Result) Final() (Sample, bool) {
	if r.Len() == 0 {
		return Sample{}, false
	}
	return r.Sample(r.Len() - 1), true
}

// Apogee returns the highest sample.
func (r *Result) Apogee() (Sample, bool) {
	if r.Len() == 0 {
		return Sample{}, false
	}
	best := 0
	for i, h := range r.Heights {
		if h > r.Heights[best] {
			best = i
		}
	}
	return r.Sample(best), true
}

func (r *Result) FlightTime() float64 {
	if r.Len() == 0 {
		return 0
	}
	return r.Times[r.Len()-1] - r.Times[0]
}
