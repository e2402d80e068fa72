// Package metrics holds the pure arithmetic behind project scheduling and progress figures.
package metrics

// SumEstimated adds estimated hours, counting absent values as zero.
func SumEstimated(estimates []*int) int {
	total := 0
	for _, e := range estimates {
		if e != nil {
			total += *e
		}
	}
	return total
}

// Remaining returns estimated minus registered, floored at zero.
// Registered hours may legitimately exceed the estimate.
func Remaining(estimated, registered int) int {
	return max(estimated-registered, 0)
}

// PerWorkday spreads remaining hours evenly over working days. Zero days yields 0.
func PerWorkday(remaining, workingDays int) float64 {
	if workingDays <= 0 {
		return 0
	}
	return float64(remaining) / float64(workingDays)
}

// Progress returns registered as a percentage of estimated, capped at 100.
// A zero estimate yields 0.
func Progress(estimated, registered int) float64 {
	if estimated == 0 {
		return 0
	}
	return min(float64(registered)/float64(estimated)*100, 100.0)
}
