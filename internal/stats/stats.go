package stats

import (
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// ServiceEvent is one completed service draw: the session's arrival time
// and the duration sampled for it.
type ServiceEvent struct {
	T        float64
	Duration float64
}

// Snapshot is a periodic view of the system: how many sessions have
// arrived so far, how many finished service and how many are in flight.
type Snapshot struct {
	T         float64
	Arrivals  int
	Completed int
	InFlight  int
}

// Collector accumulates simulation events behind a mutex so simgo
// processes and the exporter goroutine can share it. When Stream is set,
// every service event is forwarded there as well.
type Collector struct {
	mu        sync.Mutex
	arrivals  []float64
	events    []ServiceEvent
	snapshots []Snapshot

	Stream chan<- ServiceEvent
}

func NewCollector() *Collector {
	return &Collector{
		mu:       sync.Mutex{},
		arrivals: make([]float64, 0),
		events:   make([]ServiceEvent, 0),
	}
}

func (c *Collector) AddArrival(t float64) {
	c.mu.Lock()
	c.arrivals = append(c.arrivals, t)
	c.mu.Unlock()
}

func (c *Collector) AddService(ev ServiceEvent) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
	if c.Stream != nil {
		c.Stream <- ev
	}
}

// AddSnapshot records the state of the system as of time t.
func (c *Collector) AddSnapshot(t float64) {
	c.mu.Lock()
	c.snapshots = append(c.snapshots, Snapshot{
		T:         t,
		Arrivals:  len(c.arrivals),
		Completed: len(c.events),
		InFlight:  len(c.arrivals) - len(c.events),
	})
	c.mu.Unlock()
}

// Arrivals returns the number of sessions that entered the system.
func (c *Collector) Arrivals() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.arrivals)
}

// ArrivalTimes returns a copy of the recorded arrival timestamps.
func (c *Collector) ArrivalTimes() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]float64, len(c.arrivals))
	copy(out, c.arrivals)
	return out
}

// Events returns a copy of the recorded service events.
func (c *Collector) Events() []ServiceEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ServiceEvent, len(c.events))
	copy(out, c.events)
	return out
}

// Snapshots returns a copy of the recorded periodic snapshots.
func (c *Collector) Snapshots() []Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Snapshot, len(c.snapshots))
	copy(out, c.snapshots)
	return out
}

// Durations returns the sampled durations sorted ascending.
func (c *Collector) Durations() []float64 {
	c.mu.Lock()
	out := make([]float64, len(c.events))
	for i, ev := range c.events {
		out[i] = ev.Duration
	}
	c.mu.Unlock()
	sort.Float64s(out)
	return out
}

// Summary describes the empirical distribution of collected durations.
type Summary struct {
	Count    int
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
	P50      float64
	P90      float64
	P99      float64
}

// Summarize computes the empirical summary of everything collected so
// far. A zero-count summary has all values zero.
func (c *Collector) Summarize() Summary {
	xs := c.Durations()
	if len(xs) == 0 {
		return Summary{}
	}
	return Summary{
		Count:    len(xs),
		Mean:     stat.Mean(xs, nil),
		Variance: stat.Variance(xs, nil),
		StdDev:   stat.StdDev(xs, nil),
		Min:      xs[0],
		Max:      xs[len(xs)-1],
		P50:      stat.Quantile(0.5, stat.Empirical, xs, nil),
		P90:      stat.Quantile(0.9, stat.Empirical, xs, nil),
		P99:      stat.Quantile(0.99, stat.Empirical, xs, nil),
	}
}
