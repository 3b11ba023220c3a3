// Package report aggregates a run's daily acceptance outcomes into summary
// statistics. It summarizes this run's own output only; forecasting and
// classification belong to downstream pipelines.
package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DaySample is one simulated day's acceptance tally.
type DaySample struct {
	Date     string // ISO-8601 (YYYY-MM-DD)
	Accepted int
	Total    int
}

// Rate returns the day's acceptance rate, 0 when no offers were made.
func (d DaySample) Rate() float64 {
	if d.Total == 0 {
		return 0
	}
	return float64(d.Accepted) / float64(d.Total)
}

// Summary holds aggregate statistics over a daily acceptance-rate series.
type Summary struct {
	Days          int
	TotalOffers   int
	TotalAccepted int
	MeanRate      float64
	StdDev        float64
	P50           float64
	P90           float64
}

// Summarize computes daily-rate statistics over the series. Safe for empty
// input (returns zero-value fields); StdDev is 0 for a single-day series.
func Summarize(days []DaySample) Summary {
	summary := Summary{Days: len(days)}
	if len(days) == 0 {
		return summary
	}

	rates := make([]float64, 0, len(days))
	for _, d := range days {
		summary.TotalOffers += d.Total
		summary.TotalAccepted += d.Accepted
		rates = append(rates, d.Rate())
	}

	summary.MeanRate = stat.Mean(rates, nil)
	if len(rates) > 1 {
		summary.StdDev = stat.StdDev(rates, nil)
	}

	sort.Float64s(rates)
	summary.P50 = stat.Quantile(0.5, stat.Empirical, rates, nil)
	summary.P90 = stat.Quantile(0.9, stat.Empirical, rates, nil)

	return summary
}
