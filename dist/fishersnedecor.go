package dist

import (
	"fmt"
	"math"

	"github.com/emrzvv/distlib/mathx"
)

// FisherSnedecor is the F-distribution with freedomOne and freedomTwo
// degrees of freedom, the ratio of two scaled chi-squared variates.
//
// Moments exist only on part of the parameter space: Mean needs
// freedomTwo > 2, Variance and StdDev need freedomTwo > 4, Skewness
// needs freedomTwo > 6 and Mode needs freedomOne > 2. Calling a moment
// outside its domain panics. Infinite degrees of freedom are valid
// parameters; queries on them return NaN where no finite limit exists.
type FisherSnedecor struct {
	freedomOne float64
	freedomTwo float64
}

var _ Continuous = FisherSnedecor{}

// NewFisherSnedecor returns an F-distribution with freedomOne and
// freedomTwo degrees of freedom. Fails when either parameter is NaN or
// not positive; +Inf is permitted.
func NewFisherSnedecor(freedomOne, freedomTwo float64) (FisherSnedecor, error) {
	if math.IsNaN(freedomOne) || math.IsNaN(freedomTwo) ||
		freedomOne <= 0 || freedomTwo <= 0 {
		return FisherSnedecor{}, fmt.Errorf(
			"%w: fisher-snedecor freedoms must be positive, got (%v, %v)",
			ErrBadParams, freedomOne, freedomTwo)
	}
	return FisherSnedecor{freedomOne: freedomOne, freedomTwo: freedomTwo}, nil
}

// FreedomOne returns the numerator degrees of freedom.
func (f FisherSnedecor) FreedomOne() float64 { return f.freedomOne }

// FreedomTwo returns the denominator degrees of freedom.
func (f FisherSnedecor) FreedomTwo() float64 { return f.freedomTwo }

// PDF returns the probability density at x:
//
//	sqrt((d1·x)^d1 · d2^d2 / (d1·x+d2)^(d1+d2)) / (x·B(d1/2, d2/2))
//
// The formula is evaluated as written, so x outside the support and
// infinite parameters propagate to NaN instead of panicking.
func (f FisherSnedecor) PDF(x float64) float64 {
	return math.Sqrt(math.Pow(f.freedomOne*x, f.freedomOne)*
		math.Pow(f.freedomTwo, f.freedomTwo)/
		math.Pow(f.freedomOne*x+f.freedomTwo, f.freedomOne+f.freedomTwo)) /
		(x * mathx.Beta(f.freedomOne/2, f.freedomTwo/2))
}

// LnPDF returns ln(PDF(x)). It is the logarithm of the ordinary-domain
// density, so it underflows to -Inf once PDF itself underflows rather
// than staying finite deep in the tails.
func (f FisherSnedecor) LnPDF(x float64) float64 {
	return math.Log(f.PDF(x))
}

// CDF returns P(X <= x) as the regularized incomplete beta function
// I_{d1·x/(d1·x+d2)}(d1/2, d2/2). Returns NaN when either freedom or x
// is infinite. Panics if x < 0.
func (f FisherSnedecor) CDF(x float64) float64 {
	if math.IsInf(f.freedomOne, 0) || math.IsInf(f.freedomTwo, 0) || math.IsInf(x, 0) {
		return math.NaN()
	}
	return mathx.BetaReg(f.freedomOne/2, f.freedomTwo/2,
		f.freedomOne*x/(f.freedomOne*x+f.freedomTwo))
}

// Mean returns d2/(d2-2). Panics if freedomTwo <= 2.
func (f FisherSnedecor) Mean() float64 {
	if f.freedomTwo <= 2 {
		panic("dist: fisher-snedecor mean requires freedomTwo > 2")
	}
	return f.freedomTwo / (f.freedomTwo - 2.0)
}

// Variance returns 2·d2²·(d1+d2-2) / (d1·(d2-2)²·(d2-4)). Panics if
// freedomTwo <= 4.
func (f FisherSnedecor) Variance() float64 {
	if f.freedomTwo <= 4 {
		panic("dist: fisher-snedecor variance requires freedomTwo > 4")
	}
	return (2.0 * f.freedomTwo * f.freedomTwo * (f.freedomOne + f.freedomTwo - 2.0)) /
		(f.freedomOne * (f.freedomTwo - 2.0) * (f.freedomTwo - 2.0) * (f.freedomTwo - 4.0))
}

// StdDev returns the square root of the variance. Panics if
// freedomTwo <= 4.
func (f FisherSnedecor) StdDev() float64 {
	return math.Sqrt(f.Variance())
}

// Skewness returns (2·d1+d2-2)·sqrt(8·(d2-4)) / ((d2-6)·sqrt(d1·(d1+d2-2))).
// Panics if freedomTwo <= 6.
func (f FisherSnedecor) Skewness() float64 {
	if f.freedomTwo <= 6 {
		panic("dist: fisher-snedecor skewness requires freedomTwo > 6")
	}
	return ((2.0*f.freedomOne + f.freedomTwo - 2.0) * math.Sqrt(8.0*(f.freedomTwo-4.0))) /
		((f.freedomTwo - 6.0) * math.Sqrt(f.freedomOne*(f.freedomOne+f.freedomTwo-2.0)))
}

// Mode returns d2·(d1-2) / (d1·(d2+2)). Panics if freedomOne <= 2.
func (f FisherSnedecor) Mode() float64 {
	if f.freedomOne <= 2 {
		panic("dist: fisher-snedecor mode requires freedomOne > 2")
	}
	return (f.freedomTwo * (f.freedomOne - 2.0)) / (f.freedomOne * (f.freedomTwo + 2.0))
}

// Min returns the lower bound of the support.
func (f FisherSnedecor) Min() float64 { return 0 }

// Max returns the upper bound of the support.
func (f FisherSnedecor) Max() float64 { return math.Inf(1) }

// Sample draws one variate from src as a ratio of two gamma draws:
// (G(d1/2, 1/2)·d2) / (G(d2/2, 1/2)·d1).
func (f FisherSnedecor) Sample(src Source) float64 {
	return (SampleGamma(src, f.freedomOne/2, 0.5) * f.freedomTwo) /
		(SampleGamma(src, f.freedomTwo/2, 0.5) * f.freedomOne)
}
