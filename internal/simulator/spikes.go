package simulator

import (
	"github.com/emrzvv/distlib/internal/config"
	"github.com/fschuetz04/simgo"
)

// generateSpikes walks the configured spike schedule in order, scaling
// the arrival rate by each spike's factor for its duration and restoring
// the base rate afterwards.
func generateSpikes(
	proc simgo.Process,
	cfg *config.Config,
	rc *rateCtrl) {

	for _, sp := range cfg.Spikes {
		wait := sp.At - proc.Now()
		if wait > 0 {
			proc.Wait(proc.Timeout(wait))
		}
		rc.Set(rc.base * sp.Factor)
		proc.Wait(proc.Timeout(sp.Duration))
		rc.Set(rc.base)
	}
}
