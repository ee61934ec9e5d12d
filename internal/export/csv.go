package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/emrzvv/distlib/dist"
	"github.com/emrzvv/distlib/internal/stats"
)

// ToCSV writes summary.csv, cdf.csv and timeseries.csv for a finished
// run: the empirical figures from col side by side with the analytic
// ones the distribution exposes through its capability interfaces.
func ToCSV(out string, service dist.Continuous, col *stats.Collector) error {
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}
	if err := writeSummaryToCSV(service, col, filepath.Join(out, "summary.csv")); err != nil {
		return err
	}
	if err := writeCDFToCSV(service, col, filepath.Join(out, "cdf.csv")); err != nil {
		return err
	}
	return writeSnapshotsToCSV(col, filepath.Join(out, "timeseries.csv"))
}

// analyticMoment evaluates one analytic quantity. Moments outside their
// domain of definition panic by contract; those come back as ok=false
// and the summary cell stays empty.
func analyticMoment(f func() float64) (v float64, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return f(), true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeSummaryToCSV(service dist.Continuous, col *stats.Collector, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"metric", "analytic", "empirical"})

	sum := col.Summarize()
	row := func(metric, analytic, empirical string) {
		w.Write([]string{metric, analytic, empirical})
	}

	analyticCell := func(f func() float64) string {
		if v, ok := analyticMoment(f); ok {
			return formatFloat(v)
		}
		return ""
	}

	row("count", "", strconv.Itoa(sum.Count))
	row("arrivals", "", strconv.Itoa(col.Arrivals()))

	if m, ok := service.(dist.Moments); ok {
		row("mean", analyticCell(m.Mean), formatFloat(sum.Mean))
		row("variance", analyticCell(m.Variance), formatFloat(sum.Variance))
		row("std_dev", analyticCell(m.StdDev), formatFloat(sum.StdDev))
		row("skewness", analyticCell(m.Skewness), "")
		row("mode", analyticCell(m.Mode), "")
	} else {
		row("mean", "", formatFloat(sum.Mean))
		row("variance", "", formatFloat(sum.Variance))
		row("std_dev", "", formatFloat(sum.StdDev))
	}

	medianCell := ""
	if med, ok := service.(dist.Median); ok {
		medianCell = analyticCell(med.Median)
	}
	row("median", medianCell, formatFloat(sum.P50))

	if ent, ok := service.(dist.Entropy); ok {
		row("entropy", analyticCell(ent.Entropy), "")
	}

	row("min", formatFloat(service.Min()), formatFloat(sum.Min))
	row("max", formatFloat(service.Max()), formatFloat(sum.Max))
	row("p90", "", formatFloat(sum.P90))
	row("p99", "", formatFloat(sum.P99))

	w.Flush()
	return w.Error()
}

// cdfGridPoints is the number of rows in cdf.csv.
const cdfGridPoints = 200

// cdfSeries evaluates the analytic and the empirical CDF on an even grid
// spanning the observed durations.
func cdfSeries(service dist.Continuous, xs []float64) (grid, analytic, empirical []float64) {
	if len(xs) == 0 {
		return nil, nil, nil
	}
	lo, hi := xs[0], xs[len(xs)-1]
	step := (hi - lo) / float64(cdfGridPoints-1)
	n := float64(len(xs))
	for i := 0; i < cdfGridPoints; i++ {
		x := lo + step*float64(i)
		atMost := sort.Search(len(xs), func(j int) bool { return xs[j] > x })
		grid = append(grid, x)
		analytic = append(analytic, service.CDF(x))
		empirical = append(empirical, float64(atMost)/n)
	}
	return grid, analytic, empirical
}

func writeCDFToCSV(service dist.Continuous, col *stats.Collector, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"x", "analytic_cdf", "empirical_cdf"})

	grid, analytic, empirical := cdfSeries(service, col.Durations())
	for i := range grid {
		w.Write([]string{
			formatFloat(grid[i]),
			formatFloat(analytic[i]),
			formatFloat(empirical[i]),
		})
	}

	w.Flush()
	return w.Error()
}

func writeSnapshotsToCSV(col *stats.Collector, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"time_s", "arrivals", "completed", "in_flight"})

	for _, snap := range col.Snapshots() {
		w.Write([]string{
			fmt.Sprintf("%.5f", snap.T),
			strconv.Itoa(snap.Arrivals),
			strconv.Itoa(snap.Completed),
			strconv.Itoa(snap.InFlight),
		})
	}

	w.Flush()
	return w.Error()
}
