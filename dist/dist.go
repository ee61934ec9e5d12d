// Package dist provides continuous probability distributions built on the
// special functions in mathx: density, cumulative distribution, moments
// and exact random sampling, with one interface per capability so that
// each family implements exactly the subset that is mathematically
// defined for it.
//
// Construction goes through validating factories (NewGamma, NewChiSquared,
// ...) that reject NaN and out-of-range parameters with an error wrapping
// ErrBadParams. After construction, calling an operation outside its
// stated domain — a negative density argument on a family with hard
// support at zero, a moment whose defining condition fails — panics:
// that is a programming error, not a runtime condition. Evaluating at
// infinite parameters where the limit is not uniquely defined returns
// NaN, a normal outcome to be checked with math.IsNaN.
package dist

import "errors"

// ErrBadParams reports distribution parameters that are NaN or outside
// the family's allowed range.
var ErrBadParams = errors.New("dist: bad distribution parameters")

// Source supplies uniform random floats in [0, 1). *math/rand.Rand
// satisfies Source; LockedSource is a seeded implementation safe for
// concurrent use.
type Source interface {
	Float64() float64
}

// Sampler draws one random variate per call from the caller's source.
// Implementations never retain or seed src, so concurrent calls with
// distinct sources are independent.
type Sampler interface {
	Sample(src Source) float64
}

// Density evaluates the probability density function and its logarithm.
type Density interface {
	PDF(x float64) float64
	LnPDF(x float64) float64
}

// Cumulative evaluates the cumulative distribution function.
type Cumulative interface {
	CDF(x float64) float64
}

// Support reports the bounds of the distribution's support.
type Support interface {
	Min() float64
	Max() float64
}

// Moments groups the moment queries shared by every family in this
// package. Individual moments may carry per-family domain restrictions
// (a FisherSnedecor mean requires freedom2 > 2) and panic when violated.
type Moments interface {
	Mean() float64
	Variance() float64
	StdDev() float64
	Skewness() float64
	Mode() float64
}

// Entropy is implemented by families with a defined differential entropy.
type Entropy interface {
	Entropy() float64
}

// Median is implemented by families with a closed-form or documented
// approximate median.
type Median interface {
	Median() float64
}

// Continuous is the working surface of a fully featured continuous
// distribution; the simulation harness consumes this composition.
type Continuous interface {
	Density
	Cumulative
	Support
	Sampler
}
