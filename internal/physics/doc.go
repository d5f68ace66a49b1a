// Package physics models the state of a single-stage rocket in vertical
// flight.
//
// A [Rocket] carries fixed parameters (dry mass, propellant, consumption rate,
// thrust, time step, gravity) and the mutable state of a run (elapsed time,
// mass, velocity, acceleration, height). Units:
//
//   - mass in grams, consumption in grams per second
//   - thrust in Newtons
//   - time in seconds, height in meters
//
// # Example
//
//	r, err := physics.New(physics.NewParams(800, 100, 50, 9))
//	if err != nil {
//	    return err
//	}
//	m := r.CurrentTotalMass()
//	a := r.InstantaneousAcceleration()
//	r.AdvanceTime()
//
// The powered acceleration weighs the vehicle with [StandardGravity] while the
// post-burnout acceleration uses the configured gravity, which may differ.
package physics
