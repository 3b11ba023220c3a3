package sim

import "time"

// RunConfig groups the parameters of a full simulation run.
type RunConfig struct {
	StartDate   time.Time // first pickup date considered (inclusive)
	EndDate     time.Time // last pickup date considered (inclusive)
	LoadsPerDay int       // offers generated per weekday
	Seed        int64     // master seed for the partitioned RNG
}

// WeekdaysBetween returns every Monday–Friday date in [start, end], in
// ascending order. The driver offers loads on weekdays only; weekend
// decisioning still exists in the engine for out-of-band offers.
func WeekdaysBetween(start, end time.Time) []time.Time {
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, d)
		}
	}
	return days
}
