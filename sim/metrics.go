package sim

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carrier-sim/carrier-sim/sim/report"
)

// Metrics accumulates run-level acceptance tallies.
type Metrics struct {
	TotalOffers   int
	TotalAccepted int
	// Per-lane tallies, keyed by directional lane.
	LaneOffers   map[Lane]int
	LaneAccepted map[Lane]int
	// Daily holds one sample per simulated day, in run order.
	Daily []report.DaySample
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		LaneOffers:   make(map[Lane]int),
		LaneAccepted: make(map[Lane]int),
	}
}

// ObserveDay folds one day's partition into the tallies.
func (m *Metrics) ObserveDay(date time.Time, accepted, rejected []Load) {
	for _, load := range accepted {
		m.LaneOffers[load.Lane()]++
		m.LaneAccepted[load.Lane()]++
	}
	for _, load := range rejected {
		m.LaneOffers[load.Lane()]++
	}
	m.TotalOffers += len(accepted) + len(rejected)
	m.TotalAccepted += len(accepted)
	m.Daily = append(m.Daily, report.DaySample{
		Date:     date.Format(time.DateOnly),
		Accepted: len(accepted),
		Total:    len(accepted) + len(rejected),
	})
}

// AcceptanceRate returns the overall accepted/offered ratio, 0 when empty.
func (m *Metrics) AcceptanceRate() float64 {
	if m.TotalOffers == 0 {
		return 0
	}
	return float64(m.TotalAccepted) / float64(m.TotalOffers)
}

// Print logs the run summary: totals, daily-rate statistics, and the lanes
// with dedicated tallies.
func (m *Metrics) Print(startTime time.Time) {
	summary := report.Summarize(m.Daily)
	logrus.Infof("Processed %d offers over %d days: %d accepted (%.1f%%)",
		m.TotalOffers, summary.Days, m.TotalAccepted, 100*m.AcceptanceRate())
	logrus.Infof("Daily acceptance rate: mean=%.3f stddev=%.3f p50=%.3f p90=%.3f",
		summary.MeanRate, summary.StdDev, summary.P50, summary.P90)
	for _, lane := range sortedLanes(m.LaneOffers) {
		logrus.Debugf("lane %s: %d/%d accepted", lane, m.LaneAccepted[lane], m.LaneOffers[lane])
	}
	logrus.Infof("Simulation wall-clock time: %v", time.Since(startTime))
}

func sortedLanes(tallies map[Lane]int) []Lane {
	lanes := make([]Lane, 0, len(tallies))
	for lane := range tallies {
		lanes = append(lanes, lane)
	}
	sort.Slice(lanes, func(i, j int) bool { return lanes[i].String() < lanes[j].String() })
	return lanes
}
