package physics_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rocketsim/internal/physics"
)

var _ = Describe("Rocket", func() {
	Describe("New", func() {
		It("starts fully fuelled at the configured time and height", func() {
			p := physics.NewParams(800, 100, 50, 9)
			p.InitialTime = 1.5
			p.InitialHeight = 12
			r, err := physics.New(p)
			Expect(err).NotTo(HaveOccurred())

			Expect(r.Mass()).To(Equal(900.0))
			Expect(r.ElapsedTime()).To(Equal(1.5))
			Expect(r.Height()).To(Equal(12.0))
			Expect(r.Velocity()).To(BeZero())
			Expect(r.TimeStep()).To(Equal(physics.DefaultTimeStep))
			Expect(r.Gravity()).To(Equal(physics.DefaultGravity))
			Expect(r.Exhausted()).To(BeFalse())
		})

		DescribeTable("rejects invalid parameters",
			func(mutate func(*physics.Params), field string) {
				p := physics.NewParams(800, 100, 50, 9)
				mutate(&p)
				r, err := physics.New(p)
				Expect(r).To(BeNil())
				Expect(errors.Is(err, physics.ErrInvalidParameter)).To(BeTrue())

				var perr *physics.ParameterError
				Expect(errors.As(err, &perr)).To(BeTrue())
				Expect(perr.Name).To(Equal(field))
			},
			Entry("zero time step", func(p *physics.Params) { p.TimeStep = 0 }, "time step"),
			Entry("negative time step", func(p *physics.Params) { p.TimeStep = -0.01 }, "time step"),
			Entry("negative dry mass", func(p *physics.Params) { p.DryMass = -1 }, "dry mass"),
			Entry("negative propellant", func(p *physics.Params) { p.PropellantMass = -1 }, "propellant mass"),
			Entry("negative consumption", func(p *physics.Params) { p.ConsumptionRate = -1 }, "consumption rate"),
			Entry("negative thrust", func(p *physics.Params) { p.Thrust = -1 }, "thrust"),
			Entry("NaN thrust", func(p *physics.Params) { p.Thrust = math.NaN() }, "thrust"),
			Entry("infinite gravity", func(p *physics.Params) { p.Gravity = math.Inf(-1) }, "gravity"),
			Entry("negative initial height", func(p *physics.Params) { p.InitialHeight = -0.5 }, "initial height"),
		)

		It("accepts all-zero masses and thrust", func() {
			_, err := physics.New(physics.NewParams(0, 0, 0, 0))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("CurrentTotalMass", func() {
		It("depletes linearly with elapsed time", func() {
			r, err := physics.New(physics.NewParams(800, 100, 50, 9))
			Expect(err).NotTo(HaveOccurred())

			Expect(r.CurrentTotalMass()).To(Equal(900.0))
			for i := 0; i < 100; i++ {
				r.AdvanceTime()
			}
			Expect(r.CurrentTotalMass()).To(BeNumerically("~", 850, 1e-9))
		})

		It("is non-increasing and floored at the dry mass", func() {
			r, err := physics.New(physics.NewParams(800, 100, 50, 9))
			Expect(err).NotTo(HaveOccurred())

			prev := math.Inf(1)
			for i := 0; i < 500; i++ {
				m := r.CurrentTotalMass()
				Expect(m).To(BeNumerically("<=", prev))
				Expect(m).To(BeNumerically(">=", 800))
				prev = m
				r.AdvanceTime()
			}
			Expect(prev).To(Equal(800.0))
			Expect(r.Exhausted()).To(BeTrue())
		})

		It("treats an empty tank as exhausted from the start", func() {
			r, err := physics.New(physics.NewParams(500, 0, 10, 20))
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Exhausted()).To(BeTrue())
			Expect(r.CurrentTotalMass()).To(Equal(500.0))
			Expect(r.InstantaneousAcceleration()).To(Equal(physics.DefaultGravity))
		})

		It("never depletes without consumption", func() {
			r, err := physics.New(physics.NewParams(500, 100, 0, 20))
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 1000; i++ {
				r.AdvanceTime()
			}
			Expect(r.CurrentTotalMass()).To(Equal(600.0))
			Expect(r.BurnTime()).To(BeNumerically(">", 1e300))
		})
	})

	Describe("InstantaneousAcceleration", func() {
		It("uses net force over mass while powered", func() {
			r, err := physics.New(physics.NewParams(800, 100, 50, 9))
			Expect(err).NotTo(HaveOccurred())

			m := r.CurrentTotalMass()
			want := (9 - physics.WeightForce(m)) / physics.InKg(m)
			Expect(r.InstantaneousAcceleration()).To(Equal(want))
			Expect(r.Acceleration()).To(Equal(want))
		})

		It("weighs the vehicle with the standard constant, not the configured gravity", func() {
			p := physics.NewParams(800, 100, 50, 9)
			p.Gravity = -1.62
			r, err := physics.New(p)
			Expect(err).NotTo(HaveOccurred())

			r.CurrentTotalMass()
			Expect(r.InstantaneousAcceleration()).To(BeNumerically("~", (9-0.9*9.8)/0.9, 1e-12))
		})

		It("switches to the configured gravity after exhaustion", func() {
			p := physics.NewParams(800, 100, 50, 9)
			p.Gravity = -3.7
			r, err := physics.New(p)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 300; i++ {
				m := r.CurrentTotalMass()
				a := r.InstantaneousAcceleration()
				if m == r.DryMass() {
					Expect(a).To(Equal(-3.7))
				} else {
					Expect(a).NotTo(Equal(-3.7))
				}
				r.AdvanceTime()
			}
		})
	})

	Describe("AdvanceTime", func() {
		It("moves only the clock", func() {
			r, err := physics.New(physics.NewParams(800, 100, 50, 9))
			Expect(err).NotTo(HaveOccurred())
			r.SetMotion(3, 4)

			r.AdvanceTime()
			Expect(r.ElapsedTime()).To(Equal(0.01))
			Expect(r.Mass()).To(Equal(900.0))
			Expect(r.Velocity()).To(Equal(3.0))
			Expect(r.Height()).To(Equal(4.0))
		})
	})

	Describe("derived quantities", func() {
		It("reports burn time and lift-off thrust to weight", func() {
			r, err := physics.New(physics.NewParams(800, 100, 50, 9))
			Expect(err).NotTo(HaveOccurred())
			Expect(r.BurnTime()).To(Equal(2.0))
			Expect(r.ThrustToWeight()).To(BeNumerically("~", 9/8.82, 1e-12))
		})

		It("exposes its parameters by name", func() {
			r, err := physics.New(physics.NewParams(800, 100, 50, 9))
			Expect(err).NotTo(HaveOccurred())
			Expect(r.GetParams()).To(HaveKeyWithValue("thrust", 9.0))
			Expect(r.GetParams()).To(HaveKeyWithValue("dt", 0.01))
		})
	})
})

var _ = Describe("unit helpers", func() {
	It("converts grams to kilograms and Newtons", func() {
		Expect(physics.InKg(1500)).To(Equal(1.5))
		Expect(physics.WeightForce(1000)).To(Equal(9.8))
	})
})
