package sim

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/san-kum/rocketsim/internal/physics"
)

// initialCapacity bounds the up-front allocation of the result sequences.
const initialCapacity = 4096

type Simulator struct {
	integrator Integrator
	metrics    []Metric
	observers  []Observer
	log        zerolog.Logger
}

func New(integrator Integrator, log zerolog.Logger) *Simulator {
	return &Simulator{
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
		log:        log,
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run integrates r from its initial height until the first sample below
// ground. That sample is kept. The rocket is mutated in place and must not be
// shared with another run.
func (s *Simulator) Run(ctx context.Context, r *physics.Rocket, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	capacity := initialCapacity
	if cfg.MaxSteps < capacity {
		capacity = cfg.MaxSteps
	}
	result := newResult(capacity)

	for _, m := range s.metrics {
		m.Reset()
	}

	s.log.Debug().
		Float64("dt", r.TimeStep()).
		Float64("mass", r.Mass()).
		Float64("height", r.Height()).
		Int("max_steps", cfg.MaxSteps).
		Msg("run started")

	var prev Sample
	step := 0
	for r.Height() >= 0 {
		if step >= cfg.MaxSteps {
			err := &SimulationError{Step: step, Time: r.ElapsedTime(), Wrapped: ErrNonTerminating}
			s.log.Error().Err(err).Float64("height", r.Height()).Msg("step ceiling reached")
			result.StepsTaken = step
			return result, err
		}

		select {
		case <-ctx.Done():
			result.StepsTaken = step
			return result, ctx.Err()
		default:
		}

		cur := s.Step(r, prev, step == 0)
		if !cur.IsValid() {
			result.StepsTaken = step
			return result, &SimulationError{Step: step, Time: cur.Time, Wrapped: ErrInvalidState}
		}

		result.append(cur)
		if result.BurnoutIndex < 0 && r.Exhausted() {
			result.BurnoutIndex = step
			s.log.Debug().Int("step", step).Float64("t", cur.Time).Float64("height", cur.Height).
				Float64("velocity", cur.Velocity).Msg("propellant exhausted")
		}

		for _, m := range s.metrics {
			m.Observe(cur)
		}
		for _, obs := range s.observers {
			obs.OnStep(step, cur)
		}

		prev = cur
		step++
	}

	result.StepsTaken = step
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	if apogee, ok := result.Apogee(); ok {
		s.log.Info().
			Int("steps", step).
			Float64("flight_time", result.FlightTime()).
			Float64("apogee", apogee.Height).
			Msg("run finished")
	}

	return result, nil
}

// Step performs one iteration: sample mass, time and acceleration from r,
// integrate velocity and height, write them back and advance the clock. The
// first step of a run pins velocity and height to zero.
func (s *Simulator) Step(r *physics.Rocket, prev Sample, first bool) Sample {
	cur := Sample{Mass: r.CurrentTotalMass()}
	cur.Time = r.ElapsedTime()
	cur.Acceleration = r.InstantaneousAcceleration()

	if !first {
		cur = s.integrator.Step(prev, cur, r.TimeStep())
	}

	r.SetMotion(cur.Velocity, cur.Height)
	r.AdvanceTime()
	return cur
}

func validateConfig(cfg Config) error {
	if cfg.MaxSteps <= 0 {
		return fmt.Errorf("%w: max steps must be positive, got %d", ErrInvalidConfig, cfg.MaxSteps)
	}
	return nil
}
