// Package trace provides decision-trace recording for acceptance policy
// analysis. This package has no dependencies on sim/ — it stores pure data
// types.
package trace

// DecisionRecord captures a single accept/reject decision.
type DecisionRecord struct {
	LoadID      string
	PickupDate  string // ISO-8601 (YYYY-MM-DD)
	Origin      string
	Destination string
	Accepted    bool
	Reason      string
	Policy      string  // matched lane policy name; empty for the default
	FinalProb   float64 // probability the draw was compared against
}
