package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/emrzvv/distlib/internal/stats"
)

// StreamSamples writes service events to a CSV file as they happen, so a
// long run leaves readable partial output behind. A ticker flushes the
// writer periodically. The goroutine exits when events is closed; on ctx
// cancellation it drains whatever the producer has left and exits.
func StreamSamples(ctx context.Context, wg *sync.WaitGroup, events <-chan stats.ServiceEvent, path string) {
	defer wg.Done()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("cannot create output dir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("cannot write %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"time_s", "duration_s"})

	writeRow := func(ev stats.ServiceEvent) {
		_ = w.Write([]string{
			fmt.Sprintf("%.5f", ev.T),
			fmt.Sprintf("%.5f", ev.Duration),
		})
	}

	flushTicker := time.NewTicker(800 * time.Millisecond)
	defer flushTicker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				w.Flush()
				return
			}
			writeRow(ev)
		case <-flushTicker.C:
			w.Flush()
		case <-ctx.Done():
			for ev := range events {
				writeRow(ev)
			}
			w.Flush()
			return
		}
	}
}
