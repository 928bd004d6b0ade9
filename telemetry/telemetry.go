// Package telemetry is the optional observability boundary around the
// tableau core: a zap-backed progress logger and a RunMetrics renderer.
// Nothing here is consulted by the decision procedure; its only hook into a
// running Decide is tableau.Options.OnProgress, which the core calls
// synchronously and never inside a hot loop, and LogResult and MetricsTable
// work on a finished Result, so no I/O ever runs inside the core itself.
package telemetry

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rfielding/epistemic-tableau/tableau"
)

// NewLogger builds a production zap.Logger, dropped to debug level when
// verbose is set.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// ProgressLogger returns a tableau.Options.OnProgress callback that logs
// one Info line per stage transition through logger.
func ProgressLogger(logger *zap.Logger, inputKey string) func(tableau.Stage) {
	return func(stage tableau.Stage) {
		logger.Info("tableau stage",
			zap.String("input", inputKey),
			zap.String("stage", string(stage)),
		)
	}
}

// LogResult emits a single summary line for a finished Decide run,
// including the RunMetrics counters.
func LogResult(logger *zap.Logger, result *tableau.Result) {
	logger.Info("tableau decided",
		zap.Bool("satisfiable", result.Satisfiable),
		zap.Int("prestatesCreated", result.Metrics.PrestatesCreated),
		zap.Int("statesCreated", result.Metrics.StatesCreated),
		zap.Int64("cutsApplied", result.Metrics.CutsApplied),
		zap.Int64("rule3Applications", result.Metrics.Rule3Applications),
		zap.Int("eliminationRounds", result.Metrics.EliminationRounds),
		zap.Duration("duration", result.Metrics.Duration),
		zap.Int("eliminationTraceLen", len(result.EliminationTrace)),
	)
}
