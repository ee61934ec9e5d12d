package simulator

import (
	"github.com/emrzvv/distlib/dist"
	"github.com/emrzvv/distlib/internal/stats"
	"github.com/fschuetz04/simgo"
)

func generateArrivals(
	proc simgo.Process,
	sim *simgo.Simulation,
	unit dist.Exponential,
	rc *rateCtrl,
	service dist.Continuous,
	col *stats.Collector,
	src dist.Source) {

	for {
		ia := unit.Sample(src) / rc.Get()
		if ia < 1e-6 {
			ia = 1e-6
		}
		proc.Wait(proc.Timeout(ia))
		now := proc.Now()
		col.AddArrival(now)

		sim.Process(func(session simgo.Process) {
			d := service.Sample(src)
			// Normal service times can come out negative; such a
			// session occupies no simulated time but its draw still
			// counts toward the empirical distribution.
			hold := d
			if hold < 0 {
				hold = 0
			}
			session.Wait(session.Timeout(hold))
			col.AddService(stats.ServiceEvent{T: now, Duration: d})
		})
	}
}
