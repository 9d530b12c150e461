package trace

// FaultStats aggregates fault statistics from a Trace.
type FaultStats struct {
	Policy     string
	Steps      int
	FaultCount int
	HitCount   int
	Evictions  int
	FaultRate  float64 // FaultCount / Steps, in [0,1]
	HitRate    float64 // HitCount / Steps, in [0,1]
}

// Summarize computes fault statistics from a Trace.
// Safe for nil or empty traces (rates are 0, not NaN).
func Summarize(t *Trace) FaultStats {
	var stats FaultStats
	if t == nil {
		return stats
	}
	stats.Policy = t.Policy
	stats.Steps = len(t.Records)
	for _, r := range t.Records {
		if r.Hit() {
			stats.HitCount++
		} else {
			stats.FaultCount++
		}
		if r.Evicted != nil {
			stats.Evictions++
		}
	}
	if stats.Steps > 0 {
		stats.FaultRate = float64(stats.FaultCount) / float64(stats.Steps)
		stats.HitRate = float64(stats.HitCount) / float64(stats.Steps)
	}
	return stats
}

// FaultPercent returns the fault rate as a percentage.
func (s FaultStats) FaultPercent() float64 {
	return s.FaultRate * 100
}
