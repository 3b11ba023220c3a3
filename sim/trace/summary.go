package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDecisions  int
	AcceptedCount   int
	RejectedCount   int
	AcceptanceRate  float64
	ReasonCounts    map[string]int // rejection reason → count
	PolicyDecisions map[string]int // policy name → decisions it governed
	UniqueLanes     int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		ReasonCounts:    make(map[string]int),
		PolicyDecisions: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	lanes := make(map[[2]string]bool)
	for _, d := range st.Decisions {
		summary.TotalDecisions++
		if d.Accepted {
			summary.AcceptedCount++
		} else {
			summary.RejectedCount++
			summary.ReasonCounts[d.Reason]++
		}
		if d.Policy != "" {
			summary.PolicyDecisions[d.Policy]++
		}
		lanes[[2]string{d.Origin, d.Destination}] = true
	}
	summary.UniqueLanes = len(lanes)

	if summary.TotalDecisions > 0 {
		summary.AcceptanceRate = float64(summary.AcceptedCount) / float64(summary.TotalDecisions)
	}

	return summary
}
