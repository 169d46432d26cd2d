// Package lazymapbench drives randomized workloads against
// lazymap.Map and reports per-operation latency, for measuring how
// copy-on-write sharing and detach frequency trade off against each
// other under realistic branching patterns.
package lazymapbench

import (
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/carlmjohnson/versioninfo"

	"github.com/mohitmv/lazymap"
)

// Workload configures a Run.
type Workload struct {
	// Handles is the number of independent Map handles kept "live"
	// during the run, each periodically copied off the previous one.
	Handles int
	// OpsPerHandle is the number of insert/erase operations applied to
	// each handle before it is copied into the next one.
	OpsPerHandle int
	// DetachEvery, if positive, calls Detach on a handle every N
	// handles instead of leaving the chain to grow unbounded.
	DetachEvery int
	// Seed makes the generated key/value fixtures reproducible.
	Seed uint64
}

// Report summarizes one Run.
type Report struct {
	Version     string
	Handles     int
	TotalOps    int
	Elapsed     time.Duration
	MeanOpNanos float64
	FinalSize   int
	FinalDepth  int
}

// Run drives w against a fresh Map[string, string] and logs a Report
// to logger. It returns the same Report for callers that want to
// assert on it directly (tests, CI gating).
func Run(logger *slog.Logger, w Workload) Report {
	gofakeit.Seed(int64(w.Seed))

	m := lazymap.New[string, string]()
	start := time.Now()
	totalOps := 0

	for h := 0; h < w.Handles; h++ {
		next := m.Copy()
		for i := 0; i < w.OpsPerHandle; i++ {
			key := gofakeit.Word()
			if i%5 == 0 && next.Contains(key) {
				next.Erase(key)
			} else {
				next.InsertOrAssign(key, gofakeit.Sentence(4))
			}
			totalOps++
		}
		if w.DetachEvery > 0 && h > 0 && h%w.DetachEvery == 0 {
			next.Detach()
		}
		m.Release()
		m = next
	}

	elapsed := time.Since(start)
	report := Report{
		Version:     versioninfo.Short(),
		Handles:     w.Handles,
		TotalOps:    totalOps,
		Elapsed:     elapsed,
		FinalSize:   m.Size(),
		FinalDepth:  m.Depth(),
	}
	if totalOps > 0 {
		report.MeanOpNanos = float64(elapsed.Nanoseconds()) / float64(totalOps)
	}

	logger.Info("lazymapbench run complete",
		slog.String("version", report.Version),
		slog.Int("handles", report.Handles),
		slog.Int("total_ops", report.TotalOps),
		slog.Duration("elapsed", report.Elapsed),
		slog.Float64("mean_op_nanos", report.MeanOpNanos),
		slog.Int("final_size", report.FinalSize),
		slog.Int("final_depth", report.FinalDepth))

	return report
}
