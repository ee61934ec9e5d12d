package dist

import (
	"fmt"
	"math"
)

const (
	sqrt2Pi    = 2.50662827463100050241576528481104525300698674 // sqrt(2π)
	lnSqrt2Pi  = 0.91893853320467274178032973640561763986139747 // ln(sqrt(2π))
	lnSqrt2PiE = 1.41893853320467274178032973640561763986139747 // ln(sqrt(2πe))
)

// Normal is the normal distribution with location mean and scale stdDev.
type Normal struct {
	mean   float64
	stdDev float64
}

var _ Continuous = Normal{}

// NewNormal returns a normal distribution with the given location and
// scale. Fails when either parameter is NaN or stdDev is not positive;
// infinite values are permitted.
func NewNormal(mean, stdDev float64) (Normal, error) {
	if math.IsNaN(mean) || math.IsNaN(stdDev) || stdDev <= 0 {
		return Normal{}, fmt.Errorf(
			"%w: normal requires finite-or-infinite mean and stdDev > 0, got (%v, %v)",
			ErrBadParams, mean, stdDev)
	}
	return Normal{mean: mean, stdDev: stdDev}, nil
}

// StdDev returns the scale parameter.
func (n Normal) StdDev() float64 { return n.stdDev }

// PDF returns the probability density at x.
func (n Normal) PDF(x float64) float64 {
	d := (x - n.mean) / n.stdDev
	return math.Exp(-0.5*d*d) / (sqrt2Pi * n.stdDev)
}

// LnPDF returns the natural logarithm of the density at x, computed in
// the log domain.
func (n Normal) LnPDF(x float64) float64 {
	d := (x - n.mean) / n.stdDev
	return -0.5*d*d - lnSqrt2Pi - math.Log(n.stdDev)
}

// CDF returns P(X <= x).
func (n Normal) CDF(x float64) float64 {
	return 0.5 * math.Erfc((n.mean-x)/(n.stdDev*math.Sqrt2))
}

// Mean returns the location parameter.
func (n Normal) Mean() float64 { return n.mean }

// Variance returns stdDev².
func (n Normal) Variance() float64 { return n.stdDev * n.stdDev }

// Skewness returns 0.
func (n Normal) Skewness() float64 { return 0 }

// Mode returns the location parameter.
func (n Normal) Mode() float64 { return n.mean }

// Median returns the location parameter.
func (n Normal) Median() float64 { return n.mean }

// Entropy returns ln(σ·sqrt(2πe)).
func (n Normal) Entropy() float64 {
	return math.Log(n.stdDev) + lnSqrt2PiE
}

// Min returns the lower bound of the support.
func (n Normal) Min() float64 { return math.Inf(-1) }

// Max returns the upper bound of the support.
func (n Normal) Max() float64 { return math.Inf(1) }

// Sample draws one variate from src.
func (n Normal) Sample(src Source) float64 {
	return SampleNormal(src, n.mean, n.stdDev)
}
