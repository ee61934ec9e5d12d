package export

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/emrzvv/distlib/dist"
	"github.com/emrzvv/distlib/internal/stats"
)

func aggregateArrivals(times []float64, step, horizon float64) []float64 {
	buckets := int(math.Ceil(horizon / step))
	counts := make([]float64, buckets)

	for _, at := range times {
		index := int(at / step)
		if index < buckets {
			counts[index] += 1
		}
	}
	return counts
}

// PlotArrivals draws the arrival counts per step over the whole run.
func PlotArrivals(col *stats.Collector, step, horizon float64, file string) error {
	counts := aggregateArrivals(col.ArrivalTimes(), step, horizon)

	pts := make(plotter.XYs, len(counts))
	for i, c := range counts {
		pts[i].X = float64(i) * step
		pts[i].Y = c
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Количество запросов за шаг (%.0f с)", step)
	p.X.Label.Text = "Время (с)"
	p.Y.Label.Text = "Количество запросов"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}

// PlotCDF draws the analytic CDF of the service distribution over the
// empirical CDF of the collected durations.
func PlotCDF(service dist.Continuous, col *stats.Collector, file string) error {
	grid, analytic, empirical := cdfSeries(service, col.Durations())
	if len(grid) == 0 {
		return nil
	}

	analyticPts := make(plotter.XYs, len(grid))
	empiricalPts := make(plotter.XYs, len(grid))
	for i, x := range grid {
		analyticPts[i].X = x
		analyticPts[i].Y = analytic[i]
		empiricalPts[i].X = x
		empiricalPts[i].Y = empirical[i]
	}

	p := plot.New()
	p.Title.Text = "Функция распределения: аналитическая и эмпирическая"
	p.X.Label.Text = "Длительность (с)"
	p.Y.Label.Text = "F(x)"

	la, err := plotter.NewLine(analyticPts)
	if err != nil {
		return err
	}
	le, err := plotter.NewLine(empiricalPts)
	if err != nil {
		return err
	}
	le.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(la, le)
	p.Legend.Add("аналитическая", la)
	p.Legend.Add("эмпирическая", le)
	p.Legend.Top = true

	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}
