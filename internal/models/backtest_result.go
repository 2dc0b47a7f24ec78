package models

// SpreadCoverTolerance is the fixed error tolerance, in points, under which
// a spread prediction counts as covered. This is a "close prediction"
// metric, not a beat-the-market one; the aggregator keeps both separate.
const SpreadCoverTolerance = 7.0

// BacktestResult pairs a prediction with the known final outcome of its
// matchup. Created only once the matchup is final; never mutated.
type BacktestResult struct {
	Prediction Prediction `json:"prediction"`

	ActualHomeScore int     `json:"actualHomeScore"`
	ActualAwayScore int     `json:"actualAwayScore"`
	ActualSpread    float64 `json:"actualSpread"`
	ActualTotal     float64 `json:"actualTotal"`

	WinnerCorrect bool    `json:"winnerCorrect"`
	SpreadError   float64 `json:"spreadError"`
	TotalError    float64 `json:"totalError"`
	Covered       bool    `json:"covered"`
}

// NewBacktestResult scores a prediction against a final matchup.
func NewBacktestResult(pred Prediction, matchup *Matchup) BacktestResult {
	actualSpread := matchup.ActualSpread()
	actualTotal := matchup.ActualTotal()

	spreadErr := abs(pred.Spread - actualSpread)
	totalErr := abs(pred.Total - actualTotal)

	return BacktestResult{
		Prediction:      pred,
		ActualHomeScore: *matchup.HomeScore,
		ActualAwayScore: *matchup.AwayScore,
		ActualSpread:    actualSpread,
		ActualTotal:     actualTotal,
		WinnerCorrect:   sameWinner(pred.Spread, actualSpread),
		SpreadError:     spreadErr,
		TotalError:      totalErr,
		Covered:         spreadErr <= SpreadCoverTolerance,
	}
}

// sameWinner reports whether the predicted and actual margins point at the
// same winning side. A predicted pick'em (spread exactly 0) only matches an
// actual tie.
func sameWinner(predicted, actual float64) bool {
	if predicted > 0 {
		return actual > 0
	}
	if predicted < 0 {
		return actual < 0
	}
	return actual == 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
