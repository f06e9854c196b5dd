package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalAssignments   int
	DroppedCalls       int
	MeanScore          float64 // mean score of the chosen car over scored assignments
	MaxScore           int
	UniqueTargets      int
	TargetDistribution map[int]int    // car → count of calls assigned
	ActionCounts       map[string]int // action name → count of commits
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		TargetDistribution: make(map[int]int),
		ActionCounts:       make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalAssignments = len(st.Assignments)
	totalScore, scored := 0, 0
	for _, a := range st.Assignments {
		if a.ChosenCar == NoCar {
			summary.DroppedCalls++
			continue
		}
		summary.TargetDistribution[a.ChosenCar]++
		if a.ChosenCar < len(a.Scores) {
			s := a.Scores[a.ChosenCar]
			totalScore += s
			scored++
			if s > summary.MaxScore {
				summary.MaxScore = s
			}
		}
	}
	if scored > 0 {
		summary.MeanScore = float64(totalScore) / float64(scored)
	}

	for _, a := range st.Actions {
		summary.ActionCounts[a.Action]++
	}

	summary.UniqueTargets = len(summary.TargetDistribution)

	return summary
}
