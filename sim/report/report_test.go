package report

import (
	"math"
	"testing"
)

func TestDaySample_Rate(t *testing.T) {
	if got := (DaySample{Accepted: 3, Total: 10}).Rate(); got != 0.3 {
		t.Errorf("Rate() = %v, want 0.3", got)
	}
	if got := (DaySample{}).Rate(); got != 0 {
		t.Errorf("empty day Rate() = %v, want 0", got)
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	if summary.Days != 0 || summary.MeanRate != 0 || summary.StdDev != 0 {
		t.Errorf("empty summary = %+v", summary)
	}
}

func TestSummarize_SingleDay(t *testing.T) {
	summary := Summarize([]DaySample{{Date: "2025-03-03", Accepted: 5, Total: 10}})
	if summary.Days != 1 || summary.MeanRate != 0.5 || summary.StdDev != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.P50 != 0.5 || summary.P90 != 0.5 {
		t.Errorf("quantiles = (%v, %v), want (0.5, 0.5)", summary.P50, summary.P90)
	}
}

func TestSummarize_HandComputedSeries(t *testing.T) {
	days := []DaySample{
		{Date: "2025-03-03", Accepted: 10, Total: 100}, // 0.1
		{Date: "2025-03-04", Accepted: 20, Total: 100}, // 0.2
		{Date: "2025-03-05", Accepted: 30, Total: 100}, // 0.3
		{Date: "2025-03-06", Accepted: 40, Total: 100}, // 0.4
	}

	summary := Summarize(days)
	if summary.Days != 4 || summary.TotalOffers != 400 || summary.TotalAccepted != 100 {
		t.Errorf("totals = %+v", summary)
	}
	if math.Abs(summary.MeanRate-0.25) > 1e-12 {
		t.Errorf("MeanRate = %v, want 0.25", summary.MeanRate)
	}
	// Sample standard deviation of {0.1, 0.2, 0.3, 0.4}.
	want := math.Sqrt((0.0225 + 0.0025 + 0.0025 + 0.0225) / 3)
	if math.Abs(summary.StdDev-want) > 1e-12 {
		t.Errorf("StdDev = %v, want %v", summary.StdDev, want)
	}
	if summary.P50 < 0.2 || summary.P50 > 0.3 {
		t.Errorf("P50 = %v, want within [0.2, 0.3]", summary.P50)
	}
	if summary.P90 < 0.3 || summary.P90 > 0.4 {
		t.Errorf("P90 = %v, want within [0.3, 0.4]", summary.P90)
	}
}
