package genoseq

// QualityScores synthesizes a per-base confidence score for each position.
// The score is a heuristic derived from local sequence context, not an
// instrument measurement: base 30, +5 when a position extends a homopolymer
// run, +3 when it repeats the base two positions back, capped at
// MaxQualityScore.
func QualityScores(sequence string) []uint8 {
	scores := make([]uint8, len(sequence))
	for i := 0; i < len(sequence); i++ {
		score := 30
		if i > 0 && sequence[i] == sequence[i-1] {
			score += 5
		}
		if i > 1 && sequence[i] == sequence[i-2] {
			score += 3
		}
		if score > MaxQualityScore {
			score = MaxQualityScore
		}
		scores[i] = uint8(score)
	}
	return scores
}

// ErrorRate estimates a per-base error likelihood: each non-ACGT symbol
// counts as one error, each homopolymer extension as a tenth of one, divided
// by sequence length. Returns 0 for an empty sequence.
func ErrorRate(sequence string) float64 {
	if len(sequence) == 0 {
		return 0
	}
	errors := 0.0
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'A', 'C', 'G', 'T':
		default:
			errors++
		}
		if i > 0 && sequence[i] == sequence[i-1] {
			errors += 0.1
		}
	}
	return errors / float64(len(sequence))
}

// meanQuality averages a score slice; 0 for an empty slice.
func meanQuality(scores []uint8) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += int(s)
	}
	return float64(sum) / float64(len(scores))
}
