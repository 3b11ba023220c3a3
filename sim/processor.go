package sim

import (
	"time"

	"github.com/carrier-sim/carrier-sim/sim/trace"
)

// OfferProcessor drives ordered sequences of load offers through decision
// engines. The policy table is shared across calls; engine state (capacity
// counters, last-date marker) is created per call and discarded after it.
type OfferProcessor struct {
	policies *PolicyTable

	// Trace, when non-nil, receives one DecisionRecord per processed
	// offer for later policy analysis.
	Trace *trace.SimulationTrace
}

// NewOfferProcessor creates a processor over the given policy table.
func NewOfferProcessor(policies *PolicyTable) *OfferProcessor {
	return &OfferProcessor{policies: policies}
}

// ProcessBatch evaluates loads in input order through one shared engine
// instance, so capacity state accumulates across the whole batch. The result
// is a partition of the input: every load lands in exactly one of the two
// sequences, in its original relative order.
//
// Capacity limits are date-scoped only when the batch is ordered by
// non-decreasing pickup date; see CapacityTracker.ResetIfNewPeriod.
func (p *OfferProcessor) ProcessBatch(loads []Load, rng RandomSource) (accepted, rejected []Load) {
	engine := NewDecisionEngine(p.policies, rng)
	for _, load := range loads {
		decision := engine.Decide(load)
		p.record(load, decision)
		if decision.Accepted {
			accepted = append(accepted, load)
		} else {
			rejected = append(rejected, load)
		}
	}
	return accepted, rejected
}

// AcceptanceRate computes the empirical acceptance rate over the loads whose
// directional lane is origin→destination. It uses a fresh engine scoped to
// this single computation, so no capacity state leaks in from other calls;
// with a re-seeded identical random source, two calls over the same loads
// return identical counts. Rate is 0.0 when no load matches the lane.
func (p *OfferProcessor) AcceptanceRate(origin, destination Market, loads []Load, rng RandomSource) (accepted, total int, rate float64) {
	engine := NewDecisionEngine(p.policies, rng)
	for _, load := range loads {
		if load.Origin.Market != origin || load.Destination.Market != destination {
			continue
		}
		total++
		if engine.Decide(load).Accepted {
			accepted++
		}
	}
	if total > 0 {
		rate = float64(accepted) / float64(total)
	}
	return accepted, total, rate
}

func (p *OfferProcessor) record(load Load, decision Decision) {
	if p.Trace == nil {
		return
	}
	p.Trace.Record(trace.DecisionRecord{
		LoadID:      load.ID,
		PickupDate:  load.PickupDate.Format(time.DateOnly),
		Origin:      string(load.Origin.Market),
		Destination: string(load.Destination.Market),
		Accepted:    decision.Accepted,
		Reason:      decision.Reason,
		Policy:      decision.Policy,
		FinalProb:   decision.FinalProb,
	})
}
