package telemetry_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rfielding/epistemic-tableau/tableau"
	"github.com/rfielding/epistemic-tableau/telemetry"
)

func TestMetricsTableContainsAllCounters(t *testing.T) {
	m := tableau.RunMetrics{
		PrestatesCreated:  3,
		StatesCreated:     5,
		CutsApplied:       2,
		Rule3Applications: 1,
		EliminationRounds: 4,
		Duration:          150 * time.Millisecond,
	}

	out := telemetry.MetricsTable(m)

	assert.True(t, strings.HasPrefix(out, "| Metric | Value |\n"))
	assert.Contains(t, out, "| prestatesCreated | 3 |")
	assert.Contains(t, out, "| statesCreated | 5 |")
	assert.Contains(t, out, "| cutsApplied | 2 |")
	assert.Contains(t, out, "| rule3Applications | 1 |")
	assert.Contains(t, out, "| eliminationRounds | 4 |")
	assert.Contains(t, out, "| duration | 150ms |")
}

func TestMetricsTableZeroValue(t *testing.T) {
	out := telemetry.MetricsTable(tableau.RunMetrics{})
	assert.Contains(t, out, "| prestatesCreated | 0 |")
	assert.Contains(t, out, "| duration | 0s |")
}
