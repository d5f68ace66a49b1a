package sim_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/rocketsim/internal/integrators"
	"github.com/san-kum/rocketsim/internal/physics"
	"github.com/san-kum/rocketsim/internal/sim"
)

func newRocket(dry, propellant, rate, thrust float64) *physics.Rocket {
	r, err := physics.New(physics.NewParams(dry, propellant, rate, thrust))
	Expect(err).NotTo(HaveOccurred())
	return r
}

func newSimulator() *sim.Simulator {
	return sim.New(integrators.NewEuler(), zerolog.Nop())
}

func newEnsemble() *sim.Ensemble {
	return sim.NewEnsemble(func(*physics.Rocket) *sim.Simulator { return newSimulator() })
}

func expectAligned(res *sim.Result) {
	n := len(res.Times)
	Expect(res.Heights).To(HaveLen(n))
	Expect(res.Velocities).To(HaveLen(n))
	Expect(res.Accelerations).To(HaveLen(n))
	Expect(res.Masses).To(HaveLen(n))
	Expect(res.StepsTaken).To(Equal(n))
}

type countingObserver struct {
	steps []int
}

func (c *countingObserver) OnStep(step int, s sim.Sample) { c.steps = append(c.steps, step) }

type sampleCounter struct {
	resets, observed int
}

func (c *sampleCounter) Name() string       { return "samples" }
func (c *sampleCounter) Observe(sim.Sample) { c.observed++ }
func (c *sampleCounter) Value() float64     { return float64(c.observed) }
func (c *sampleCounter) Reset()             { c.resets++; c.observed = 0 }

var _ = Describe("Simulator", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("small rocket", func() {
		var res *sim.Result

		BeforeEach(func() {
			var err error
			res, err = newSimulator().Run(ctx, newRocket(800, 100, 50, 9), sim.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces index-aligned sequences", func() {
			expectAligned(res)
		})

		It("rises and falls within a few hundred steps", func() {
			Expect(res.Len()).To(BeNumerically(">", 100))
			Expect(res.Len()).To(BeNumerically("<", 1000))

			apogee, ok := res.Apogee()
			Expect(ok).To(BeTrue())
			Expect(apogee.Height).To(BeNumerically(">", 0))
		})

		It("pins the first velocity and height to zero", func() {
			Expect(res.Velocities[0]).To(Equal(0.0))
			Expect(res.Heights[0]).To(Equal(0.0))
			Expect(res.Times[0]).To(Equal(0.0))
			Expect(res.Masses[0]).To(Equal(900.0))
		})

		It("computes the second sample with the Euler rule", func() {
			dt := 0.01
			t1 := 0.0 + dt
			m1 := 800 + (100 - 50*t1)
			a1 := (9 - physics.WeightForce(m1)) / physics.InKg(m1)
			v1 := 0.0 + a1*dt
			h1 := 0.0 + v1*dt + 0.5*a1*dt*dt

			Expect(res.Times[1]).To(Equal(t1))
			Expect(res.Masses[1]).To(BeNumerically("~", m1, 1e-12))
			Expect(res.Accelerations[1]).To(BeNumerically("~", a1, 1e-12))
			Expect(res.Velocities[1]).To(BeNumerically("~", v1, 1e-15))
			Expect(res.Heights[1]).To(BeNumerically("~", h1, 1e-15))
			Expect(res.Heights[1]).To(BeNumerically(">", 0))
		})

		It("keeps the first negative height and nothing after it", func() {
			last := res.Len() - 1
			Expect(res.Heights[last]).To(BeNumerically("<", 0))
			for _, h := range res.Heights[:last] {
				Expect(h).To(BeNumerically(">=", 0))
			}

			final, ok := res.Final()
			Expect(ok).To(BeTrue())
			Expect(final.Height).To(Equal(res.Heights[last]))
		})

		It("records burnout and free fall afterwards", func() {
			Expect(res.BurnoutIndex).To(BeNumerically(">", 0))
			for i, m := range res.Masses {
				Expect(m).To(BeNumerically(">=", 800))
				if i >= res.BurnoutIndex {
					Expect(m).To(Equal(800.0))
					Expect(res.Accelerations[i]).To(Equal(physics.DefaultGravity))
				}
			}
		})
	})

	Describe("Falcon-like rocket", func() {
		const dry = 98286580.0

		It("terminates and switches to free fall at exactly the dry mass", func() {
			res, err := newSimulator().Run(ctx, newRocket(dry, 450767420, 1451496, 7607000), sim.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
			expectAligned(res)

			first := -1
			for i, m := range res.Masses {
				if m == dry {
					first = i
					break
				}
			}
			Expect(first).To(BeNumerically(">", 0))
			Expect(res.BurnoutIndex).To(Equal(first))

			Expect(res.Accelerations[first-1]).To(BeNumerically(">", 0))
			Expect(res.Accelerations[first]).To(Equal(-9.8))
			for _, a := range res.Accelerations[first:] {
				Expect(a).To(Equal(-9.8))
			}

			for i := 1; i < len(res.Masses); i++ {
				Expect(res.Masses[i]).To(BeNumerically("<=", res.Masses[i-1]))
			}
			Expect(res.Heights[res.Len()-1]).To(BeNumerically("<", 0))
		})
	})

	It("starts at zero height regardless of the configured initial height", func() {
		p := physics.NewParams(800, 100, 50, 9)
		p.InitialHeight = 250
		r, err := physics.New(p)
		Expect(err).NotTo(HaveOccurred())

		res, err := newSimulator().Run(ctx, r, sim.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Heights[0]).To(Equal(0.0))
		Expect(res.Velocities[0]).To(Equal(0.0))
	})

	It("stops after two samples when thrust cannot lift the rocket", func() {
		res, err := newSimulator().Run(ctx, newRocket(800, 100, 50, 0), sim.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Len()).To(Equal(2))
		Expect(res.Heights[1]).To(BeNumerically("<", 0))
	})

	It("falls straight away with an empty tank", func() {
		res, err := newSimulator().Run(ctx, newRocket(800, 0, 50, 9), sim.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.BurnoutIndex).To(Equal(0))
		Expect(res.Len()).To(Equal(2))
		Expect(res.Accelerations).To(HaveEach(Equal(physics.DefaultGravity)))
	})

	Describe("non-terminating runs", func() {
		DescribeTable("surface ErrNonTerminating at the step ceiling",
			func(thrust float64) {
				cfg := sim.Config{MaxSteps: 1000}
				res, err := newSimulator().Run(ctx, newRocket(800, 100, 0, thrust), cfg)
				Expect(errors.Is(err, sim.ErrNonTerminating)).To(BeTrue())

				var serr *sim.SimulationError
				Expect(errors.As(err, &serr)).To(BeTrue())
				Expect(serr.Step).To(Equal(1000))
				Expect(res.Len()).To(Equal(1000))
				expectAligned(res)
			},
			Entry("endless climb", 50.0),
			Entry("hover", physics.WeightForce(900)),
		)
	})

	It("rejects a non-positive step ceiling", func() {
		_, err := newSimulator().Run(ctx, newRocket(800, 100, 50, 9), sim.Config{})
		Expect(errors.Is(err, sim.ErrInvalidConfig)).To(BeTrue())
	})

	It("returns the partial result when the context is canceled", func() {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		res, err := newSimulator().Run(canceled, newRocket(800, 100, 50, 9), sim.DefaultConfig())
		Expect(err).To(MatchError(context.Canceled))
		Expect(res).NotTo(BeNil())
		Expect(res.Len()).To(Equal(0))
	})

	It("notifies observers and metrics once per sample", func() {
		s := newSimulator()
		obs := &countingObserver{}
		counter := &sampleCounter{}
		s.AddObserver(obs)
		s.AddMetric(counter)

		res, err := s.Run(ctx, newRocket(800, 100, 50, 9), sim.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())

		Expect(obs.steps).To(HaveLen(res.Len()))
		Expect(obs.steps[0]).To(Equal(0))
		Expect(counter.resets).To(Equal(1))
		Expect(res.Metrics).To(HaveKeyWithValue("samples", float64(res.Len())))
	})

	Describe("Step", func() {
		It("pins the first step and integrates the next", func() {
			s := newSimulator()
			r := newRocket(800, 100, 50, 9)

			first := s.Step(r, sim.Sample{}, true)
			Expect(first.Velocity).To(Equal(0.0))
			Expect(first.Height).To(Equal(0.0))
			Expect(r.ElapsedTime()).To(Equal(0.01))

			second := s.Step(r, first, false)
			want := integrators.NewEuler().Step(first, sim.Sample{
				Time:         second.Time,
				Mass:         second.Mass,
				Acceleration: second.Acceleration,
			}, 0.01)
			Expect(second).To(Equal(want))
			Expect(r.Velocity()).To(Equal(second.Velocity))
			Expect(r.Height()).To(Equal(second.Height))
		})
	})
})

var _ = Describe("Ensemble", func() {
	It("runs independent rockets and keeps input order", func() {
		rockets := []*physics.Rocket{
			newRocket(800, 100, 50, 9),
			newRocket(800, 100, 50, 0),
			newRocket(98286580, 450767420, 1451496, 7607000),
		}

		results, err := newEnsemble().Run(context.Background(), rockets, sim.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(3))

		sequential, err := newSimulator().Run(context.Background(), newRocket(800, 100, 50, 9), sim.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(results[0].Heights).To(Equal(sequential.Heights))
		Expect(results[1].Len()).To(Equal(2))
		Expect(results[2].BurnoutIndex).To(BeNumerically(">", 0))
	})

	It("fails when any run fails", func() {
		rockets := []*physics.Rocket{
			newRocket(800, 100, 50, 9),
			newRocket(800, 100, 0, 50),
		}

		_, err := newEnsemble().Run(context.Background(), rockets, sim.Config{MaxSteps: 500})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("SimulationError", func() {
	It("formats the step and time", func() {
		err := &sim.SimulationError{Step: 150, Time: 1.5, Wrapped: sim.ErrNonTerminating}
		Expect(err.Error()).To(Equal("step 150 (t=1.5000): sim: simulation did not terminate"))
	})
})
