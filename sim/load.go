package sim

import "time"

// Load is a single load offer presented to the carrier. Immutable: created
// once by a generator and never mutated by the decision path.
type Load struct {
	ID          string
	Origin      Location
	Destination Location
	Miles       int
	PickupDate  time.Time
	Cost        float64
	Weight      int // pounds
}

// Lane is a directed origin→destination market pair. Direction matters:
// (A,B) and (B,A) are distinct lanes with independently tracked capacity,
// even when governed by the same bidirectional policy.
type Lane struct {
	Origin      Market
	Destination Market
}

// Reversed returns the opposite-direction lane.
func (l Lane) Reversed() Lane {
	return Lane{Origin: l.Destination, Destination: l.Origin}
}

func (l Lane) String() string {
	return string(l.Origin) + "-" + string(l.Destination)
}

// Lane returns the directional lane key of the offer.
func (ld Load) Lane() Lane {
	return Lane{Origin: ld.Origin.Market, Destination: ld.Destination.Market}
}

// CostPerMile is the offer cost divided by mileage, a pricing signal used to
// modify acceptance probability. Defined as 0 for zero or negative mileage;
// degenerate geometry is not an error.
func (ld Load) CostPerMile() float64 {
	if ld.Miles <= 0 {
		return 0
	}
	return ld.Cost / float64(ld.Miles)
}

// IsWeekendPickup returns true if the pickup date falls on Saturday or Sunday.
func (ld Load) IsWeekendPickup() bool {
	wd := ld.PickupDate.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
