package pipeline

// Confidence thresholds over the mean similarity score of retrieved
// chunks. Fixed policy constants, deliberately not configurable.
const (
	highThreshold   = 0.8
	mediumThreshold = 0.6
)

// collectScores extracts the non-nil similarity scores in order.
func collectScores(chunks []RetrievedChunk) []float64 {
	var scores []float64
	for _, c := range chunks {
		if c.Score != nil {
			scores = append(scores, *c.Score)
		}
	}
	return scores
}

// confidenceFor reduces a score sequence to a discrete tier.
// An empty sequence yields Low.
func confidenceFor(scores []float64) Confidence {
	if len(scores) == 0 {
		return ConfidenceLow
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	avg := sum / float64(len(scores))
	switch {
	case avg >= highThreshold:
		return ConfidenceHigh
	case avg >= mediumThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
