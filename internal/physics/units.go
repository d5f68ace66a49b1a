package physics

// StandardGravity is the constant used to turn a mass into its weight. It is
// independent of the gravity a Rocket falls with after burnout.
const StandardGravity = 9.8

const (
	DefaultTimeStep = 0.01
	DefaultGravity  = -9.8
)

// InKg converts grams to kilograms.
func InKg(grams float64) float64 {
	return grams / 1000
}

// WeightForce returns the weight in Newtons of a mass given in grams.
func WeightForce(grams float64) float64 {
	return InKg(grams) * StandardGravity
}
