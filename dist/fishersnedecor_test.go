package dist

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestNewFisherSnedecorValidation(t *testing.T) {
	inf := math.Inf(1)
	valid := [][2]float64{
		{0.1, 0.1}, {1, 0.1}, {10, 0.1}, {inf, 0.1},
		{0.1, 1}, {1, 1}, {10, 1}, {inf, 10},
		{0.1, inf}, {1, inf}, {10, inf}, {inf, inf},
	}
	for _, p := range valid {
		f, err := NewFisherSnedecor(p[0], p[1])
		require.NoError(t, err, "d1=%v d2=%v", p[0], p[1])
		assert.Equal(t, p[0], f.FreedomOne())
		assert.Equal(t, p[1], f.FreedomTwo())
	}

	bad := []float64{math.NaN(), 0, -1, -10}
	for _, d1 := range bad {
		for _, d2 := range bad {
			_, err := NewFisherSnedecor(d1, d2)
			require.Error(t, err, "d1=%v d2=%v", d1, d2)
			assert.True(t, errors.Is(err, ErrBadParams))
		}
	}
}

func TestFisherSnedecorKnownValues(t *testing.T) {
	f, err := NewFisherSnedecor(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, f.Mean())
	assert.InDelta(t, 0.31830988618379067, f.PDF(1), 1e-15)
	assert.Equal(t, 0.0, f.Min())
	assert.True(t, math.IsInf(f.Max(), 1))
}

func TestFisherSnedecorMean(t *testing.T) {
	inf := math.Inf(1)
	for _, d1 := range []float64{0.1, 1, 10} {
		f, err := NewFisherSnedecor(d1, 10)
		require.NoError(t, err)
		assert.Equal(t, 1.25, f.Mean(), "d1=%v", d1)

		f, err = NewFisherSnedecor(d1, inf)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(f.Mean()), "d1=%v d2=inf", d1)
	}

	low, err := NewFisherSnedecor(0.1, 0.1)
	require.NoError(t, err)
	require.Panics(t, func() { low.Mean() })
}

func TestFisherSnedecorVariance(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		d1, d2, want, tol float64
	}{
		{0.1, 10, 42.1875, 1e-14},
		{1, 10, 4.6875, 0},
		{10, 10, 0.9375, 0},
	}
	for _, tt := range cases {
		f, err := NewFisherSnedecor(tt.d1, tt.d2)
		require.NoError(t, err)
		if tt.tol == 0 {
			assert.Equal(t, tt.want, f.Variance(), "d1=%v d2=%v", tt.d1, tt.d2)
			assert.Equal(t, math.Sqrt(tt.want), f.StdDev(), "d1=%v d2=%v", tt.d1, tt.d2)
		} else {
			assert.InDelta(t, tt.want, f.Variance(), tt.tol, "d1=%v d2=%v", tt.d1, tt.d2)
			assert.InDelta(t, math.Sqrt(tt.want), f.StdDev(), tt.tol, "d1=%v d2=%v", tt.d1, tt.d2)
		}
	}

	for _, p := range [][2]float64{{0.1, inf}, {1, inf}, {10, inf}, {inf, 10}, {inf, inf}} {
		f, err := NewFisherSnedecor(p[0], p[1])
		require.NoError(t, err)
		assert.True(t, math.IsNaN(f.Variance()), "d1=%v d2=%v", p[0], p[1])
		assert.True(t, math.IsNaN(f.StdDev()), "d1=%v d2=%v", p[0], p[1])
	}

	low, err := NewFisherSnedecor(0.1, 0.1)
	require.NoError(t, err)
	require.Panics(t, func() { low.Variance() })
	require.Panics(t, func() { low.StdDev() })
}

func TestFisherSnedecorSkewness(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		d1, d2, want, tol float64
	}{
		{0.1, 10, 15.78090735784977089658, 1e-14},
		{1, 10, 5.773502691896257645091, 0},
		{10, 10, 3.614784456460255759501, 0},
	}
	for _, tt := range cases {
		f, err := NewFisherSnedecor(tt.d1, tt.d2)
		require.NoError(t, err)
		if tt.tol == 0 {
			assert.Equal(t, tt.want, f.Skewness(), "d1=%v d2=%v", tt.d1, tt.d2)
		} else {
			assert.InDelta(t, tt.want, f.Skewness(), tt.tol, "d1=%v d2=%v", tt.d1, tt.d2)
		}
	}

	for _, p := range [][2]float64{{0.1, inf}, {1, inf}, {10, inf}, {inf, 10}, {inf, inf}} {
		f, err := NewFisherSnedecor(p[0], p[1])
		require.NoError(t, err)
		assert.True(t, math.IsNaN(f.Skewness()), "d1=%v d2=%v", p[0], p[1])
	}

	low, err := NewFisherSnedecor(0.1, 0.1)
	require.NoError(t, err)
	require.Panics(t, func() { low.Skewness() })
}

func TestFisherSnedecorMode(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		d1, d2, want float64
	}{
		{10, 0.1, 0.0380952380952380952381},
		{10, 1, 4.0 / 15.0},
		{10, 10, 2.0 / 3.0},
	}
	for _, tt := range cases {
		f, err := NewFisherSnedecor(tt.d1, tt.d2)
		require.NoError(t, err)
		assert.Equal(t, tt.want, f.Mode(), "d1=%v d2=%v", tt.d1, tt.d2)
	}

	for _, p := range [][2]float64{{10, inf}, {inf, 0.1}, {inf, 1}, {inf, 10}, {inf, inf}} {
		f, err := NewFisherSnedecor(p[0], p[1])
		require.NoError(t, err)
		assert.True(t, math.IsNaN(f.Mode()), "d1=%v d2=%v", p[0], p[1])
	}

	low, err := NewFisherSnedecor(0.1, 0.1)
	require.NoError(t, err)
	require.Panics(t, func() { low.Mode() })
}

func TestFisherSnedecorPDF(t *testing.T) {
	cases := []struct {
		d1, d2, x, want, tol float64
	}{
		{0.1, 0.1, 1, 0.0234154207226588982471, 1e-15},
		{1, 0.1, 1, 0.0396064560910663979961, 1e-15},
		{10, 0.1, 1, 0.0418440630400545297349, 1e-14},
		{0.1, 1, 1, 0.0396064560910663979961, 1e-15},
		{1, 1, 1, 0.1591549430918953357689, 1e-15},
		{10, 1, 1, 0.230361989229138647108, 1e-15},
		{0.1, 0.1, 10, 0.00221546909694001013517, 1e-16},
		{1, 0.1, 10, 0.00369960370387922619592, 1e-16},
		{10, 0.1, 10, 0.00390179721174142927402, 1e-15},
		{0.1, 1, 10, 0.00319864073359931548273, 1e-16},
		{1, 1, 10, 0.009150765837179460915678, 1e-16},
		{10, 1, 10, 0.0116493859171442148446, 1e-16},
		{0.1, 10, 10, 0.00305087016058573989694, 1e-15},
		{1, 10, 10, 0.00271897749113479577864, 1e-16},
		{10, 10, 10, 2.4289227234060500084e-4, 1e-17},
	}
	for _, tt := range cases {
		f, err := NewFisherSnedecor(tt.d1, tt.d2)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, f.PDF(tt.x), tt.tol,
			"pdf d1=%v d2=%v x=%v", tt.d1, tt.d2, tt.x)
		assert.InDelta(t, math.Log(tt.want), f.LnPDF(tt.x), 1e-13,
			"lnpdf d1=%v d2=%v x=%v", tt.d1, tt.d2, tt.x)
	}
}

func TestFisherSnedecorPDFNaN(t *testing.T) {
	inf := math.Inf(1)

	for _, p := range [][2]float64{{inf, 0.1}, {inf, 1}, {inf, 10}, {0.1, inf}, {1, inf}, {10, inf}, {inf, inf}} {
		f, err := NewFisherSnedecor(p[0], p[1])
		require.NoError(t, err)
		for _, x := range []float64{1, 10} {
			assert.True(t, math.IsNaN(f.PDF(x)), "pdf d1=%v d2=%v x=%v", p[0], p[1], x)
			assert.True(t, math.IsNaN(f.LnPDF(x)), "lnpdf d1=%v d2=%v x=%v", p[0], p[1], x)
		}
	}

	for _, p := range [][2]float64{{0.1, 0.1}, {inf, 0.1}, {0.1, inf}, {inf, inf}} {
		f, err := NewFisherSnedecor(p[0], p[1])
		require.NoError(t, err)
		for _, x := range []float64{inf, math.Inf(-1)} {
			assert.True(t, math.IsNaN(f.PDF(x)), "pdf d1=%v d2=%v x=%v", p[0], p[1], x)
			assert.True(t, math.IsNaN(f.LnPDF(x)), "lnpdf d1=%v d2=%v x=%v", p[0], p[1], x)
		}
	}
}

func TestFisherSnedecorCDF(t *testing.T) {
	cases := []struct {
		d1, d2, x, want float64
	}{
		{0.1, 0.1, 0.1, 0.44712986033425140335},
		{1, 0.1, 0.1, 0.08156522095104674015},
		{10, 0.1, 0.1, 0.033184005716276536322},
		{0.1, 1, 0.1, 0.74378710917986379989},
		{1, 1, 0.1, 0.1949822290421366451595},
		{10, 1, 0.1, 0.0101195597354337146205},
		{0.1, 0.1, 1, 0.5},
		{1, 0.1, 1, 0.16734351500944271141},
		{10, 0.1, 1, 0.12207560664741704938},
		{0.1, 1, 1, 0.83265648499055728859},
		{1, 1, 1, 0.5},
		{10, 1, 1, 0.340893132302059872675},
	}
	for _, tt := range cases {
		f, err := NewFisherSnedecor(tt.d1, tt.d2)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, f.CDF(tt.x), 1e-13,
			"cdf d1=%v d2=%v x=%v", tt.d1, tt.d2, tt.x)
	}
}

func TestFisherSnedecorCDFNaN(t *testing.T) {
	inf := math.Inf(1)
	for _, p := range [][2]float64{{inf, 0.1}, {inf, 1}, {0.1, inf}, {1, inf}, {10, inf}, {inf, inf}} {
		f, err := NewFisherSnedecor(p[0], p[1])
		require.NoError(t, err)
		assert.True(t, math.IsNaN(f.CDF(0.1)), "d1=%v d2=%v", p[0], p[1])
	}
	finite, err := NewFisherSnedecor(0.1, 0.1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(finite.CDF(inf)))
	assert.True(t, math.IsNaN(finite.CDF(math.Inf(-1))))
}

func TestFisherSnedecorCDFNegativePanics(t *testing.T) {
	f, err := NewFisherSnedecor(3, 3)
	require.NoError(t, err)
	require.Panics(t, func() { f.CDF(-0.5) })
}

func TestFisherSnedecorAgainstGonum(t *testing.T) {
	ds := []float64{1, 3, 10}
	xs := []float64{0.1, 0.5, 1, 2.5, 10}
	for _, d1 := range ds {
		for _, d2 := range ds {
			f, err := NewFisherSnedecor(d1, d2)
			require.NoError(t, err)
			oracle := distuv.F{D1: d1, D2: d2}
			for _, x := range xs {
				assert.InEpsilon(t, oracle.Prob(x), f.PDF(x), 1e-12,
					"pdf d1=%v d2=%v x=%v", d1, d2, x)
				assert.InDelta(t, oracle.CDF(x), f.CDF(x), 1e-12,
					"cdf d1=%v d2=%v x=%v", d1, d2, x)
			}
		}
	}
}
