package dist

import (
	"fmt"
	"math"

	"github.com/emrzvv/distlib/mathx"
)

// Gamma is the Gamma distribution in the shape/rate parameterization
// (rate = 1/scale). It is the engine behind ChiSquared and the two
// independent draws composed by FisherSnedecor.
type Gamma struct {
	shape float64
	rate  float64
}

var _ Continuous = Gamma{}

// NewGamma returns a Gamma distribution with the given shape and rate.
// Either parameter may be +Inf; NaN or non-positive values are rejected.
func NewGamma(shape, rate float64) (Gamma, error) {
	if math.IsNaN(shape) || math.IsNaN(rate) || shape <= 0 || rate <= 0 {
		return Gamma{}, fmt.Errorf(
			"%w: gamma requires shape > 0 and rate > 0, got shape=%v rate=%v",
			ErrBadParams, shape, rate)
	}
	return Gamma{shape: shape, rate: rate}, nil
}

// Shape returns the shape parameter.
func (g Gamma) Shape() float64 { return g.shape }

// Rate returns the rate parameter.
func (g Gamma) Rate() float64 { return g.rate }

// PDF returns the probability density at x. Panics if x < 0.
func (g Gamma) PDF(x float64) float64 {
	if x == 0 && !math.IsInf(g.rate, 1) {
		// The x -> 0 limit of the density, split on shape, so the
		// shape == 1 boundary stays exact.
		switch {
		case g.shape < 1:
			return math.Inf(1)
		case g.shape == 1:
			return g.rate
		default:
			return 0
		}
	}
	return math.Exp(g.LnPDF(x))
}

// LnPDF returns the natural logarithm of the density at x, computed
// directly in the log domain so large shapes and rates stay finite where
// the plain density would overflow underway. Panics if x < 0.
func (g Gamma) LnPDF(x float64) float64 {
	if x < 0 {
		panic("dist: gamma density is undefined for x < 0")
	}
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case math.IsInf(g.shape, 1) && math.IsInf(g.rate, 1):
		return math.NaN()
	case math.IsInf(g.rate, 1):
		// Point mass at zero.
		if x == 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	case math.IsInf(g.shape, 1), math.IsInf(x, 1):
		return math.Inf(-1)
	}
	if x == 0 {
		switch {
		case g.shape < 1:
			return math.Inf(1)
		case g.shape == 1:
			return math.Log(g.rate)
		default:
			return math.Inf(-1)
		}
	}
	return g.shape*math.Log(g.rate) + (g.shape-1)*math.Log(x) -
		g.rate*x - mathx.LnGamma(g.shape)
}

// CDF returns P(X <= x) = GammaLowerReg(shape, rate·x). Panics if x < 0.
// An infinite rate concentrates all mass at zero; an infinite shape
// pushes it beyond every finite x; with both infinite the limit is not
// defined and the result is NaN.
func (g Gamma) CDF(x float64) float64 {
	if x < 0 {
		panic("dist: gamma cdf is undefined for x < 0")
	}
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case math.IsInf(g.shape, 1) && math.IsInf(g.rate, 1):
		return math.NaN()
	case math.IsInf(x, 1):
		return 1
	case math.IsInf(g.rate, 1):
		return 1
	case math.IsInf(g.shape, 1):
		return 0
	}
	return mathx.GammaLowerReg(g.shape, g.rate*x)
}

// Mean returns shape/rate (NaN when both are infinite).
func (g Gamma) Mean() float64 { return g.shape / g.rate }

// Variance returns shape/rate².
func (g Gamma) Variance() float64 { return g.shape / (g.rate * g.rate) }

// StdDev returns the square root of the variance.
func (g Gamma) StdDev() float64 { return math.Sqrt(g.shape / (g.rate * g.rate)) }

// Skewness returns 2/sqrt(shape).
func (g Gamma) Skewness() float64 { return 2 / math.Sqrt(g.shape) }

// Mode returns (shape-1)/rate; for shape < 1 the density is unbounded at
// zero and the returned point lies outside the support.
func (g Gamma) Mode() float64 { return (g.shape - 1) / g.rate }

// Entropy returns the differential entropy
// shape - ln(rate) + ln Γ(shape) + (1-shape)·ψ(shape), or NaN when a
// parameter is infinite.
func (g Gamma) Entropy() float64 {
	if math.IsInf(g.shape, 1) || math.IsInf(g.rate, 1) {
		return math.NaN()
	}
	return g.shape - math.Log(g.rate) + mathx.LnGamma(g.shape) +
		(1-g.shape)*mathx.Digamma(g.shape)
}

// Min returns the lower bound of the support.
func (g Gamma) Min() float64 { return 0 }

// Max returns the upper bound of the support.
func (g Gamma) Max() float64 { return math.Inf(1) }

// Sample draws one variate from src.
func (g Gamma) Sample(src Source) float64 {
	return SampleGamma(src, g.shape, g.rate)
}
