package prediction

// Scoreline is one predicted final score with its probability.
type Scoreline struct {
	HomeScore   int
	AwayScore   int
	Probability float64
}

// ModelOutput is the prediction row for one match: outcome distribution,
// the three ranked scorelines, and the designated key player per side.
// Scorelines keep their stored rank order and must never be re-sorted.
type ModelOutput struct {
	MatchID            int64
	HomeWinProbability float64
	DrawProbability    float64
	Scorelines         []Scoreline
	HomeKeyPlayerID    int64
	AwayKeyPlayerID    int64
}

// LoseProbability derives the away-win share as the remainder of the
// distribution. Inconsistent upstream probabilities (summing past 100)
// are clamped so the result stays in [0,100].
func (o ModelOutput) LoseProbability() float64 {
	lose := 100 - o.HomeWinProbability - o.DrawProbability
	if lose < 0 {
		return 0
	}
	if lose > 100 {
		return 100
	}
	return lose
}
