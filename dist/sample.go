package dist

import "math"

// SampleGamma draws one Gamma(shape, rate) variate from src with the
// Marsaglia-Tsang squeeze method (Marsaglia & Tsang, 2000). The rejection
// loop runs until acceptance; the expected number of iterations is O(1)
// for every shape >= 1. For 0 < shape < 1 the draw is boosted from
// shape+1 by the exact transform g·u^(1/shape). Panics unless shape > 0
// and rate > 0.
func SampleGamma(src Source, shape, rate float64) float64 {
	if shape <= 0 || rate <= 0 {
		panic("dist: gamma sampling requires shape > 0 and rate > 0")
	}

	a := shape
	boost := 1.0
	if shape < 1 {
		a = shape + 1
		boost = math.Pow(src.Float64(), 1/shape)
	}

	d := a - 1.0/3.0
	c := 1 / math.Sqrt(9*d)
	for {
		x := SampleNormal(src, 0, 1)
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		x *= x
		u := src.Float64()
		// Squeeze step: accepts the bulk of draws without a log.
		if u < 1-0.0331*x*x {
			return boost * d * v / rate
		}
		if math.Log(u) < 0.5*x+d*(1-v+math.Log(v)) {
			return boost * d * v / rate
		}
	}
}

// SampleNormal draws one Normal(mean, stdDev) variate from src by the
// polar Box-Muller method.
func SampleNormal(src Source, mean, stdDev float64) float64 {
	for {
		x := 2*src.Float64() - 1
		y := 2*src.Float64() - 1
		s := x*x + y*y
		if s < 1 && s != 0 {
			return mean + stdDev*(x*math.Sqrt(-2*math.Log(s)/s))
		}
	}
}
