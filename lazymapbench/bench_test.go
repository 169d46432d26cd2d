package lazymapbench

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunProducesConsistentReport(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	report := Run(logger, Workload{
		Handles:      10,
		OpsPerHandle: 20,
		DetachEvery:  3,
		Seed:         42,
	})

	require.Equal(t, 10*20, report.TotalOps)
	require.NotEmpty(t, report.Version)
	require.LessOrEqual(t, report.FinalDepth, report.Handles)
}

func TestRunWithZeroHandlesIsANoOp(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	report := Run(logger, Workload{})
	require.Equal(t, 0, report.TotalOps)
	require.Zero(t, report.MeanOpNanos)
}
