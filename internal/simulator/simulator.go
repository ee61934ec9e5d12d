// Package simulator runs a discrete-event workload where sessions arrive
// as a Poisson process and each session's service time is drawn from a
// configured distribution family.
package simulator

import (
	"fmt"
	"sync"

	"github.com/emrzvv/distlib/dist"
	"github.com/emrzvv/distlib/internal/config"
	"github.com/emrzvv/distlib/internal/stats"
	"github.com/fschuetz04/simgo"
)

// rateCtrl holds the current arrival rate so the spike process can scale
// it while the arrival process reads it.
type rateCtrl struct {
	mu      sync.RWMutex
	base    float64
	current float64
}

func (r *rateCtrl) Get() float64 {
	r.mu.RLock()
	v := r.current
	r.mu.RUnlock()
	return v
}

func (r *rateCtrl) Set(v float64) {
	r.mu.Lock()
	r.current = v
	r.mu.Unlock()
}

// BuildService constructs the service-time distribution named by
// service.family, using the per-family parameters from the config.
func BuildService(cfg *config.Config) (dist.Continuous, error) {
	s := cfg.Service
	switch s.Family {
	case config.FamilyGamma:
		d, err := dist.NewGamma(s.Shape, s.Rate)
		if err != nil {
			return nil, err
		}
		return d, nil
	case config.FamilyChiSquared:
		d, err := dist.NewChiSquared(s.Freedom)
		if err != nil {
			return nil, err
		}
		return d, nil
	case config.FamilyFisherSnedecor:
		d, err := dist.NewFisherSnedecor(s.FreedomOne, s.FreedomTwo)
		if err != nil {
			return nil, err
		}
		return d, nil
	case config.FamilyNormal:
		d, err := dist.NewNormal(s.Mean, s.StdDev)
		if err != nil {
			return nil, err
		}
		return d, nil
	case config.FamilyExponential:
		d, err := dist.NewExponential(s.Rate)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("no such family has been implemented: %q", s.Family)
	}
}

// Run simulates cfg.Simulation.TimeSeconds of workload, recording every
// arrival, completed service and periodic snapshot into col.
func Run(cfg *config.Config, service dist.Continuous, src dist.Source, col *stats.Collector) error {
	if cfg.Workload.RatePerSecond <= 0 {
		return fmt.Errorf("workload rate must be positive, got %v", cfg.Workload.RatePerSecond)
	}
	unit, err := dist.NewExponential(1)
	if err != nil {
		return err
	}

	rc := &rateCtrl{
		base:    cfg.Workload.RatePerSecond,
		current: cfg.Workload.RatePerSecond,
	}

	simulation := simgo.NewSimulation()
	if cfg.Simulation.StepSeconds > 0 {
		simulation.Process(func(proc simgo.Process) {
			collectSnapshots(proc, cfg, col)
		})
	}
	simulation.Process(func(proc simgo.Process) {
		generateSpikes(proc, cfg, rc)
	})
	simulation.Process(func(proc simgo.Process) {
		generateArrivals(proc, simulation, unit, rc, service, col, src)
	})
	simulation.RunUntil(cfg.Simulation.TimeSeconds)
	return nil
}
