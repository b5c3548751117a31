package domain

// Difficulty is the human-readable label derived from a score.
type Difficulty string

const (
	Easy     Difficulty = "Easy"
	Normal   Difficulty = "Normal"
	Hard     Difficulty = "Hard"
	VeryHard Difficulty = "Very Hard"
)

// Grade maps a propagation-round score to its label. Thresholds are
// fixed; fewer rounds means more blanks fell to one-step subtraction.
func Grade(score int) Difficulty {
	switch {
	case score <= 3:
		return Easy
	case score <= 6:
		return Normal
	case score <= 10:
		return Hard
	default:
		return VeryHard
	}
}
