package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"
	"sync"

	"github.com/emrzvv/distlib/dist"
	"github.com/emrzvv/distlib/internal/config"
	"github.com/emrzvv/distlib/internal/export"
	"github.com/emrzvv/distlib/internal/simulator"
	"github.com/emrzvv/distlib/internal/stats"
)

func main() {
	cfgPath := flag.String("cfg", "./config/default.yaml", "path to config")
	outDir := flag.String("out", "", "output directory for csv (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	dir := cfg.Output.Dir
	if *outDir != "" {
		dir = *outDir
	}

	service, err := simulator.BuildService(cfg)
	if err != nil {
		log.Fatal(err)
	}

	col := stats.NewCollector()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	var events chan stats.ServiceEvent
	if cfg.Output.Samples {
		events = make(chan stats.ServiceEvent, 1024)
		col.Stream = events
		wg.Add(1)
		go export.StreamSamples(ctx, &wg, events, filepath.Join(dir, "samples.csv"))
	}

	src := dist.NewLockedSource(cfg.Simulation.Seed)
	if err := simulator.Run(cfg, service, src, col); err != nil {
		log.Fatal(err)
	}
	if events != nil {
		close(events)
	}
	wg.Wait()

	if err := export.ToCSV(dir, service, col); err != nil {
		log.Fatal(err)
	}
	if err := export.PlotArrivals(col, cfg.Simulation.StepSeconds,
		cfg.Simulation.TimeSeconds, filepath.Join(dir, "arrivals_ts.png")); err != nil {
		log.Printf("plot error: %v", err)
	}
	if err := export.PlotCDF(service, col, filepath.Join(dir, "cdf.png")); err != nil {
		log.Printf("plot error: %v", err)
	}

	sum := col.Summarize()
	log.Printf("simulated %.0fs of %s service: %d arrivals, %d completed, empirical mean=%.5f p99=%.5f",
		cfg.Simulation.TimeSeconds, cfg.Service.Family, col.Arrivals(), sum.Count, sum.Mean, sum.P99)
}
