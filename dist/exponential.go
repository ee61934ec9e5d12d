package dist

import (
	"fmt"
	"math"
)

// Exponential is the exponential distribution with the given rate,
// the waiting time between events of a Poisson process.
type Exponential struct {
	rate float64
}

var _ Continuous = Exponential{}

// NewExponential returns an exponential distribution with the given
// rate. Fails when rate is NaN or not positive; +Inf is permitted.
func NewExponential(rate float64) (Exponential, error) {
	if math.IsNaN(rate) || rate <= 0 {
		return Exponential{}, fmt.Errorf(
			"%w: exponential rate must be positive, got %v", ErrBadParams, rate)
	}
	return Exponential{rate: rate}, nil
}

// Rate returns the rate parameter.
func (e Exponential) Rate() float64 { return e.rate }

// PDF returns the probability density rate·e^(-rate·x) at x. Panics if
// x < 0.
func (e Exponential) PDF(x float64) float64 {
	if x < 0 {
		panic("dist: exponential density is undefined for x < 0")
	}
	return e.rate * math.Exp(-e.rate*x)
}

// LnPDF returns ln(rate) - rate·x. Panics if x < 0.
func (e Exponential) LnPDF(x float64) float64 {
	if x < 0 {
		panic("dist: exponential density is undefined for x < 0")
	}
	return math.Log(e.rate) - e.rate*x
}

// CDF returns 1 - e^(-rate·x). Panics if x < 0.
func (e Exponential) CDF(x float64) float64 {
	if x < 0 {
		panic("dist: exponential cdf is undefined for x < 0")
	}
	return -math.Expm1(-e.rate * x)
}

// Mean returns 1/rate.
func (e Exponential) Mean() float64 { return 1 / e.rate }

// Variance returns 1/rate².
func (e Exponential) Variance() float64 { return 1 / (e.rate * e.rate) }

// StdDev returns 1/rate.
func (e Exponential) StdDev() float64 { return 1 / e.rate }

// Skewness returns 2.
func (e Exponential) Skewness() float64 { return 2 }

// Mode returns 0.
func (e Exponential) Mode() float64 { return 0 }

// Median returns ln(2)/rate.
func (e Exponential) Median() float64 { return math.Ln2 / e.rate }

// Entropy returns 1 - ln(rate).
func (e Exponential) Entropy() float64 { return 1 - math.Log(e.rate) }

// Min returns the lower bound of the support.
func (e Exponential) Min() float64 { return 0 }

// Max returns the upper bound of the support.
func (e Exponential) Max() float64 { return math.Inf(1) }

// Sample draws one variate from src by inversion.
func (e Exponential) Sample(src Source) float64 {
	return -math.Log(1-src.Float64()) / e.rate
}
