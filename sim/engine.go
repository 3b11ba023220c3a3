package sim

// Acceptance probability modifiers. The weekend draw bypasses every other
// rule; weight and cost-per-mile factors compose multiplicatively with the
// matched lane's base probability (or the table default).
const (
	WeekendAcceptProb = 0.05

	heavyWeightLbs = 35000
	heavyFactor    = 0.7

	lowCPMThreshold  = 1.0
	highCPMThreshold = 2.5
	lowCPMFactor     = 0.7
	highCPMFactor    = 1.3
)

// Decision reasons recorded for trace analysis.
const (
	ReasonWeekend      = "weekend dampening"
	ReasonSeasonalGate = "seasonal gate"
	ReasonAtCapacity   = "lane at capacity"
	ReasonDraw         = "probability draw"
)

// RandomSource yields uniform draws in [0,1). *rand.Rand satisfies it;
// tests may substitute a fixed source.
type RandomSource interface {
	Float64() float64
}

// Decision is the outcome of evaluating one load offer.
type Decision struct {
	Accepted bool
	Reason   string
	// Policy names the matched lane policy, empty for the table default
	// and for weekend draws.
	Policy string
	// FinalProb is the probability the draw was compared against.
	// Zero for deterministic rejections (seasonal gate, capacity).
	FinalProb float64
}

// DecisionEngine renders accept/reject decisions for load offers against a
// policy table, tracking per-date lane capacity as it goes. One engine
// instance is created per simulation batch and never shared; its random
// source must be seeded per instance for reproducible runs.
type DecisionEngine struct {
	policies *PolicyTable
	capacity *CapacityTracker
	rng      RandomSource
}

// NewDecisionEngine creates an engine with a fresh capacity tracker.
func NewDecisionEngine(policies *PolicyTable, rng RandomSource) *DecisionEngine {
	return &DecisionEngine{
		policies: policies,
		capacity: NewCapacityTracker(),
		rng:      rng,
	}
}

// Capacity exposes the engine's tracker for inspection.
func (e *DecisionEngine) Capacity() *CapacityTracker {
	return e.capacity
}

// Decide evaluates a single load offer. Never fails for well-formed loads:
// a rejection is a valid outcome, not an error.
//
// Weekend pickups short-circuit to a flat low-probability draw that touches
// neither the policy table nor the capacity counters, so weekend acceptances
// do not consume lane capacity. Counters do reset first when the pickup date
// differs from the previous load's, weekend or not.
func (e *DecisionEngine) Decide(load Load) Decision {
	e.capacity.ResetIfNewPeriod(load.PickupDate)

	if load.IsWeekendPickup() {
		return Decision{
			Accepted:  e.rng.Float64() < WeekendAcceptProb,
			Reason:    ReasonWeekend,
			FinalProb: WeekendAcceptProb,
		}
	}

	lane := load.Lane()
	baseProb := e.policies.DefaultProb
	policyName := ""
	if p := e.policies.Match(lane); p != nil {
		if !p.Season.Allows(load.PickupDate) {
			return Decision{Reason: ReasonSeasonalGate, Policy: p.Name}
		}
		if p.MaxLoadsPerDate > 0 && !e.capacity.HasCapacity(load.PickupDate, lane, p.MaxLoadsPerDate) {
			return Decision{Reason: ReasonAtCapacity, Policy: p.Name}
		}
		baseProb = p.BaseProb
		policyName = p.Name
	}

	weightFactor := 1.0
	if load.Weight > heavyWeightLbs {
		weightFactor = heavyFactor
	}

	cpmFactor := 1.0
	if cpm := load.CostPerMile(); cpm < lowCPMThreshold {
		cpmFactor = lowCPMFactor
	} else if cpm > highCPMThreshold {
		cpmFactor = highCPMFactor
	}

	finalProb := baseProb * weightFactor * cpmFactor
	accepted := e.rng.Float64() < finalProb
	if accepted {
		e.capacity.RecordAcceptance(load.PickupDate, lane)
	}

	return Decision{
		Accepted:  accepted,
		Reason:    ReasonDraw,
		Policy:    policyName,
		FinalProb: finalProb,
	}
}
