package telemetry

import (
	"fmt"
	"strings"

	"github.com/rfielding/epistemic-tableau/tableau"
)

// MetricsTable renders a RunMetrics as a markdown table: one row per
// counter, in a fixed, deterministic field order rather than map
// iteration since RunMetrics has no dynamic metric set.
func MetricsTable(m tableau.RunMetrics) string {
	var sb strings.Builder
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	rows := []struct {
		name  string
		value string
	}{
		{"prestatesCreated", fmt.Sprintf("%d", m.PrestatesCreated)},
		{"statesCreated", fmt.Sprintf("%d", m.StatesCreated)},
		{"cutsApplied", fmt.Sprintf("%d", m.CutsApplied)},
		{"rule3Applications", fmt.Sprintf("%d", m.Rule3Applications)},
		{"eliminationRounds", fmt.Sprintf("%d", m.EliminationRounds)},
		{"duration", m.Duration.String()},
	}
	for _, r := range rows {
		fmt.Fprintf(&sb, "| %s | %s |\n", r.name, r.value)
	}
	return sb.String()
}
