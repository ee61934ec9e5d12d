package simulator

import (
	"github.com/emrzvv/distlib/internal/config"
	"github.com/emrzvv/distlib/internal/stats"
	"github.com/fschuetz04/simgo"
)

// collectSnapshots records the system state every step_seconds.
func collectSnapshots(
	proc simgo.Process,
	cfg *config.Config,
	col *stats.Collector) {

	step := cfg.Simulation.StepSeconds
	for t := 0.0; t < cfg.Simulation.TimeSeconds; t += step {
		proc.Wait(proc.Timeout(step))
		col.AddSnapshot(proc.Now())
	}
}
