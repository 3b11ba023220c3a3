package sim

import "time"

// SeasonalGate restricts when a lane policy is in effect. A policy may carry
// blackout months (offers in those months are rejected outright) or active
// months (offers outside those months are rejected outright), but the gate
// never loosens the capacity or probability rules of its policy.
type SeasonalGate struct {
	// BlackoutMonths force rejection for pickups in any listed month.
	BlackoutMonths []time.Month
	// BlackoutYear, when non-zero, limits the blackout to that calendar year.
	BlackoutYear int
	// ActiveMonths, when non-empty, force rejection for pickups in any
	// month not listed.
	ActiveMonths []time.Month
}

// Allows reports whether a pickup date passes the gate.
func (g *SeasonalGate) Allows(date time.Time) bool {
	if g == nil {
		return true
	}
	month := date.Month()
	for _, m := range g.BlackoutMonths {
		if month == m && (g.BlackoutYear == 0 || date.Year() == g.BlackoutYear) {
			return false
		}
	}
	if len(g.ActiveMonths) > 0 {
		for _, m := range g.ActiveMonths {
			if month == m {
				return true
			}
		}
		return false
	}
	return true
}

// LanePolicy is one declarative acceptance rule: a directional or
// bidirectional lane match, an optional seasonal gate, a per-date-per-direction
// capacity limit, and a base acceptance probability.
type LanePolicy struct {
	Name          string
	Origin        Market
	Destination   Market
	Bidirectional bool
	Season        *SeasonalGate
	// MaxLoadsPerDate limits accepted loads per (pickup date, directional
	// lane). Zero means unconstrained.
	MaxLoadsPerDate int
	BaseProb        float64
}

// Matches reports whether the policy governs the given directional lane.
// A bidirectional policy matches both directions but capacity is still
// tracked per direction by the caller.
func (p *LanePolicy) Matches(lane Lane) bool {
	if p.Origin == lane.Origin && p.Destination == lane.Destination {
		return true
	}
	return p.Bidirectional && p.Origin == lane.Destination && p.Destination == lane.Origin
}

// PolicyTable is an ordered set of lane policies. Match order is precedence
// order: the first matching policy wins. Offers matching no policy fall
// through to DefaultProb with no capacity constraint. Immutable during a
// simulation run.
type PolicyTable struct {
	Policies    []LanePolicy
	DefaultProb float64
}

// Match returns the first policy governing the lane, or nil if none does.
func (t *PolicyTable) Match(lane Lane) *LanePolicy {
	for i := range t.Policies {
		if t.Policies[i].Matches(lane) {
			return &t.Policies[i]
		}
	}
	return nil
}

// DefaultPolicyTable returns the built-in carrier policy set: a transactional
// California pair, a dedicated Texas lane with a weak backhaul, a northeast
// lane with a one-month outage, and a produce-season pair that hands Chicago
// inbound volume from Atlanta to Lakeland in April and May.
func DefaultPolicyTable() *PolicyTable {
	return &PolicyTable{
		DefaultProb: 0.001,
		Policies: []LanePolicy{
			{
				Name:            "lax-stk-transactional",
				Origin:          CALosAngeles,
				Destination:     CAStockton,
				Bidirectional:   true,
				MaxLoadsPerDate: 10,
				BaseProb:        0.85,
			},
			{
				Name:            "dal-hou-dedicated",
				Origin:          TXDallas,
				Destination:     TXHouston,
				MaxLoadsPerDate: 5,
				BaseProb:        0.90,
			},
			{
				Name:            "hou-dal-backhaul",
				Origin:          TXHouston,
				Destination:     TXDallas,
				MaxLoadsPerDate: 1,
				BaseProb:        0.20,
			},
			{
				Name:          "eli-chi-outage",
				Origin:        NJElizabeth,
				Destination:   ILChicago,
				Bidirectional: true,
				Season: &SeasonalGate{
					BlackoutMonths: []time.Month{time.February},
					BlackoutYear:   2025,
				},
				MaxLoadsPerDate: 1,
				BaseProb:        0.50,
			},
			{
				Name:          "atl-chi-produce-primary",
				Origin:        GAAtlanta,
				Destination:   ILChicago,
				Bidirectional: true,
				Season: &SeasonalGate{
					BlackoutMonths: []time.Month{time.April, time.May},
				},
				MaxLoadsPerDate: 10,
				BaseProb:        0.80,
			},
			{
				Name:          "lak-chi-produce-season",
				Origin:        FLLakeland,
				Destination:   ILChicago,
				Bidirectional: true,
				Season: &SeasonalGate{
					ActiveMonths: []time.Month{time.April, time.May},
				},
				MaxLoadsPerDate: 10,
				BaseProb:        0.85,
			},
		},
	}
}
