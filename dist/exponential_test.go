package dist

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestNewExponentialValidation(t *testing.T) {
	for _, rate := range []float64{0.1, 1, 42.5, math.Inf(1)} {
		e, err := NewExponential(rate)
		require.NoError(t, err, "rate=%v", rate)
		assert.Equal(t, rate, e.Rate())
	}
	for _, rate := range []float64{0, -1, -10, math.NaN()} {
		_, err := NewExponential(rate)
		require.Error(t, err, "rate=%v", rate)
		assert.True(t, errors.Is(err, ErrBadParams))
	}
}

func TestExponentialDensity(t *testing.T) {
	e, err := NewExponential(2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, e.PDF(0))
	assert.Equal(t, math.Log(2), e.LnPDF(0))

	oracle := distuv.Exponential{Rate: 2}
	for _, x := range []float64{0.01, 0.5, 1, 3, 10} {
		assert.InEpsilon(t, oracle.Prob(x), e.PDF(x), 1e-13, "pdf x=%v", x)
		assert.InDelta(t, oracle.LogProb(x), e.LnPDF(x), 1e-13, "lnpdf x=%v", x)
	}
}

func TestExponentialCDF(t *testing.T) {
	e, err := NewExponential(2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.CDF(0))
	assert.InDelta(t, 0.8646647167633873, e.CDF(1), 1e-15)
	assert.Equal(t, 1.0, e.CDF(math.Inf(1)))

	oracle := distuv.Exponential{Rate: 0.35}
	weak, err := NewExponential(0.35)
	require.NoError(t, err)
	for _, x := range []float64{0.1, 1, 5, 20} {
		assert.InDelta(t, oracle.CDF(x), weak.CDF(x), 1e-14, "cdf x=%v", x)
	}
}

func TestExponentialMoments(t *testing.T) {
	e, err := NewExponential(0.1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, e.Mean())
	assert.InEpsilon(t, 100.0, e.Variance(), 1e-15)
	assert.Equal(t, 10.0, e.StdDev())
	assert.Equal(t, 2.0, e.Skewness())
	assert.Equal(t, 0.0, e.Mode())
	assert.InEpsilon(t, math.Ln2/0.1, e.Median(), 1e-15)
	assert.InDelta(t, 3.302585092994046, e.Entropy(), 1e-14)
}

func TestExponentialSupport(t *testing.T) {
	e, err := NewExponential(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.Min())
	assert.True(t, math.IsInf(e.Max(), 1))
}

func TestExponentialNegativeArgPanics(t *testing.T) {
	e, err := NewExponential(1)
	require.NoError(t, err)
	require.Panics(t, func() { e.PDF(-0.1) })
	require.Panics(t, func() { e.LnPDF(-0.1) })
	require.Panics(t, func() { e.CDF(-0.1) })
}

func TestExponentialMatchesGamma(t *testing.T) {
	// Exponential(rate) is Gamma(1, rate).
	e, err := NewExponential(1.7)
	require.NoError(t, err)
	g, err := NewGamma(1, 1.7)
	require.NoError(t, err)
	for _, x := range []float64{0, 0.2, 1, 4, 15} {
		assert.InDelta(t, g.PDF(x), e.PDF(x), 1e-14, "pdf x=%v", x)
		assert.InDelta(t, g.CDF(x), e.CDF(x), 1e-14, "cdf x=%v", x)
	}
	assert.Equal(t, g.Mean(), e.Mean())
	assert.InEpsilon(t, g.Entropy(), e.Entropy(), 1e-14)
}
