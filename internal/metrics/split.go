// Package metrics derives display percentages from raw process fields.
// Every function is total: degenerate inputs map to fixed fallbacks.
package metrics

// MaterialSplit returns the used and wasted shares of the material total.
// A non-positive total yields (0, 100).
func MaterialSplit(used, waste float64) (usedPct, wastePct float64) {
	total := used + waste
	if total <= 0 {
		return 0, 100
	}
	usedPct = used / total * 100
	return usedPct, 100 - usedPct
}

// Split is a two-part percentage breakdown of runtime.
type Split struct {
	Progress  float64
	Remaining float64
}

// RuntimeSplit compares run time against expected time. It reports false
// when either value is missing. Progress is not clamped, so an overrun
// leaves Remaining negative.
func RuntimeSplit(runTime, expectedTime *float64) (Split, bool) {
	if runTime == nil || expectedTime == nil {
		return Split{}, false
	}
	return ProgressOf(*runTime, *expectedTime), true
}

// ProgressOf is RuntimeSplit for values known to be present. An expected
// time of zero or less counts as no progress.
func ProgressOf(run, expected float64) Split {
	var progress float64
	if expected > 0 {
		progress = run / expected * 100
	}
	return Split{Progress: progress, Remaining: 100 - progress}
}

// RemainingHours is the time left until the expected run time, negative on
// overrun.
func RemainingHours(run, expected float64) float64 {
	return expected - run
}

// UptimeFromDowntime passes downtime through unclamped.
func UptimeFromDowntime(downtime float64) float64 {
	return 100 - downtime
}
