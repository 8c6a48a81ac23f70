package reward

import (
	"math"
	"math/rand"
)

var (
	log4         = math.Log(4.0)
	sgMagicConst = 1.0 + math.Log(4.5)
)

// ShapeOf returns the gamma shape for a reward mean and scale: the ratio rounded half to even,
// or the raw ratio when rounding would drop it below one
func ShapeOf(mean, beta float64) float64 {
	ratio := mean / beta
	alpha := math.RoundToEven(ratio)
	if alpha < 1 {
		return ratio
	}
	return alpha
}

// Gamma draws from Gamma(alpha, beta). Non positive alpha draws 0.
func Gamma(rng *rand.Rand, alpha, beta float64) float64 {
	switch {
	case alpha <= 0:
		return 0
	case alpha > 1:
		return gammaCheng(rng, alpha) * beta
	case alpha == 1:
		return exponential(rng) * beta
	default:
		return gammaGS(rng, alpha) * beta
	}
}

// Cheng's GB algorithm for alpha > 1
func gammaCheng(rng *rand.Rand, alpha float64) float64 {
	ainv := math.Sqrt(2.0*alpha - 1.0)
	bbb := alpha - log4
	ccc := alpha + ainv

	for {
		u1 := rng.Float64()
		if !(1e-7 < u1 && u1 < 0.9999999) {
			continue
		}
		u2 := 1.0 - rng.Float64()

		v := math.Log(u1/(1.0-u1)) / ainv
		x := alpha * math.Exp(v)
		z := u1 * u1 * u2
		r := bbb + ccc*v - x
		if r+sgMagicConst-4.5*z >= 0.0 || r >= math.Log(z) {
			return x
		}
	}
}

// inverse CDF of Exponential(1)
func exponential(rng *rand.Rand) float64 {
	return -math.Log(1.0 - rng.Float64())
}

// Ahrens-Dieter GS algorithm for 0 < alpha < 1
func gammaGS(rng *rand.Rand, alpha float64) float64 {
	b := (math.E + alpha) / math.E
	for {
		u := rng.Float64()
		p := b * u

		var x float64
		if p <= 1.0 {
			x = math.Pow(p, 1.0/alpha)
		} else {
			x = -math.Log((b - p) / alpha)
		}

		u1 := rng.Float64()
		if p > 1.0 {
			if u1 <= math.Pow(x, alpha-1.0) {
				return x
			}
		} else if u1 <= math.Exp(-x) {
			return x
		}
	}
}
