package sim

import "time"

// CapacityKey identifies one directional lane on one pickup date.
type CapacityKey struct {
	Date        string // pickup date, ISO-8601 (YYYY-MM-DD)
	Origin      Market
	Destination Market
}

func capacityKey(date time.Time, lane Lane) CapacityKey {
	return CapacityKey{
		Date:        date.Format(time.DateOnly),
		Origin:      lane.Origin,
		Destination: lane.Destination,
	}
}

// CapacityTracker counts accepted loads per (pickup date, directional lane)
// in a single flat map. Counts only ever increase within a date/lane until a
// reset; a reset clears all counters for all dates and lanes at once.
//
// Not safe for concurrent use. Each tracker is exclusively owned by one
// decision engine instance.
type CapacityTracker struct {
	counts   map[CapacityKey]int
	lastDate string
	seenAny  bool
}

// NewCapacityTracker creates an empty tracker.
func NewCapacityTracker() *CapacityTracker {
	return &CapacityTracker{counts: make(map[CapacityKey]int)}
}

// ResetIfNewPeriod clears all counters whenever the presented date differs
// from the date seen on the previous call, including the very first call.
// The reset is driven by the sequence of pickup dates presented, not by
// calendar time: feeding dates out of order re-triggers resets and makes
// capacity limits sequence-dependent rather than date-scoped. Callers that
// care about date-scoped limits must present loads in non-decreasing
// pickup-date order.
func (t *CapacityTracker) ResetIfNewPeriod(date time.Time) {
	day := date.Format(time.DateOnly)
	if !t.seenAny || t.lastDate != day {
		t.counts = make(map[CapacityKey]int)
		t.lastDate = day
		t.seenAny = true
	}
}

// HasCapacity reports whether the lane's accepted count on the date is still
// below limit.
func (t *CapacityTracker) HasCapacity(date time.Time, lane Lane, limit int) bool {
	return t.counts[capacityKey(date, lane)] < limit
}

// RecordAcceptance increments the lane's accepted count on the date,
// creating the entry on demand.
func (t *CapacityTracker) RecordAcceptance(date time.Time, lane Lane) {
	t.counts[capacityKey(date, lane)]++
}

// Count returns the current accepted count for the date and lane.
func (t *CapacityTracker) Count(date time.Time, lane Lane) int {
	return t.counts[capacityKey(date, lane)]
}
