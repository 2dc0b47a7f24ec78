package backtest

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// Fixed staking model for ROI: $100 unit stake at -110 odds. A covered
// spread pays $90.91, a miss loses the stake.
var (
	unitStake = decimal.NewFromInt(100)
	winPayout = decimal.NewFromFloat(90.91)
)

// ConfidenceBucket is one row of the calibration table: games grouped by
// confidence range with their observed winner accuracy.
type ConfidenceBucket struct {
	Range    string  `json:"range"`
	Games    int     `json:"games"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// GameSummary identifies a single prediction for best/worst rankings.
type GameSummary struct {
	MatchupID       string  `json:"matchupId"`
	PredictedSpread float64 `json:"predictedSpread"`
	ActualSpread    float64 `json:"actualSpread"`
	SpreadError     float64 `json:"spreadError"`
}

// WeeklyMetrics aggregates one week's backtest results. Always produced by
// a pure fold over the week's results, never mutated incrementally.
type WeeklyMetrics struct {
	Season int `json:"season"`
	Week   int `json:"week"`
	Games  int `json:"games"`

	WinnerCorrect  int     `json:"winnerCorrect"`
	WinnerAccuracy float64 `json:"winnerAccuracy"`
	SpreadCovered  int     `json:"spreadCovered"`
	SpreadAccuracy float64 `json:"spreadAccuracy"`

	// Total-side accuracy is measured against the market total and only
	// over games that had a line; it is a beat-the-market metric, kept
	// separate from the raw total error.
	TotalSideGames   int     `json:"totalSideGames"`
	TotalSideCorrect int     `json:"totalSideCorrect"`
	TotalAccuracy    float64 `json:"totalAccuracy"`

	AvgSpreadError float64 `json:"avgSpreadError"`
	AvgTotalError  float64 `json:"avgTotalError"`
	AvgConfidence  float64 `json:"avgConfidence"`

	Calibration []ConfidenceBucket `json:"calibration"`

	Profit     float64 `json:"profit"`
	ROIPercent float64 `json:"roiPercent"`

	Best  []GameSummary `json:"best"`
	Worst []GameSummary `json:"worst"`
}

// CalculateWeeklyMetrics folds a week's results into aggregate statistics.
// An empty week yields zeroed metrics, never NaN.
func CalculateWeeklyMetrics(season, week int, results []models.BacktestResult) WeeklyMetrics {
	m := WeeklyMetrics{
		Season:      season,
		Week:        week,
		Games:       len(results),
		Calibration: emptyCalibration(),
	}
	if len(results) == 0 {
		return m
	}

	spreadErrSum := 0.0
	totalErrSum := 0.0
	confidenceSum := 0
	for i := range results {
		r := &results[i]
		if r.WinnerCorrect {
			m.WinnerCorrect++
		}
		if r.Covered {
			m.SpreadCovered++
		}
		if line := r.Prediction.MarketLine; line != nil {
			m.TotalSideGames++
			if totalSideCorrect(r, line) {
				m.TotalSideCorrect++
			}
		}
		spreadErrSum += r.SpreadError
		totalErrSum += r.TotalError
		confidenceSum += r.Prediction.Confidence

		bucket := confidenceBucketIndex(r.Prediction.Confidence)
		m.Calibration[bucket].Games++
		if r.WinnerCorrect {
			m.Calibration[bucket].Correct++
		}
	}

	games := float64(len(results))
	m.WinnerAccuracy = float64(m.WinnerCorrect) / games * 100
	m.SpreadAccuracy = float64(m.SpreadCovered) / games * 100
	if m.TotalSideGames > 0 {
		m.TotalAccuracy = float64(m.TotalSideCorrect) / float64(m.TotalSideGames) * 100
	}
	m.AvgSpreadError = spreadErrSum / games
	m.AvgTotalError = totalErrSum / games
	m.AvgConfidence = float64(confidenceSum) / games

	for i := range m.Calibration {
		if m.Calibration[i].Games > 0 {
			m.Calibration[i].Accuracy = float64(m.Calibration[i].Correct) / float64(m.Calibration[i].Games) * 100
		}
	}

	m.Profit, m.ROIPercent = calculateROI(m.SpreadCovered, m.Games)
	m.Best, m.Worst = rankBySpreadError(results)

	return m
}

// calculateROI computes profit and ROI for a week where every game was bet
// at the fixed stake and covered spreads count as wins.
func calculateROI(wins, games int) (profit float64, roiPercent float64) {
	if games == 0 {
		return 0, 0
	}
	losses := games - wins

	p := winPayout.Mul(decimal.NewFromInt(int64(wins))).
		Sub(unitStake.Mul(decimal.NewFromInt(int64(losses))))
	staked := unitStake.Mul(decimal.NewFromInt(int64(games)))
	roi := p.Div(staked).Mul(decimal.NewFromInt(100))

	return p.InexactFloat64(), roi.InexactFloat64()
}

// totalSideCorrect reports whether the prediction called the right side of
// the market total (over or under). A push on either side counts as a miss.
func totalSideCorrect(r *models.BacktestResult, line *models.MarketLine) bool {
	predictedOver := r.Prediction.Total > line.Total
	actualOver := r.ActualTotal > line.Total
	if r.Prediction.Total == line.Total || r.ActualTotal == line.Total {
		return false
	}
	return predictedOver == actualOver
}

func confidenceBucketIndex(confidence int) int {
	idx := (confidence - 50) / 10
	if idx < 0 {
		return 0
	}
	if idx > 4 {
		return 4
	}
	return idx
}

func emptyCalibration() []ConfidenceBucket {
	ranges := []string{"50-60", "60-70", "70-80", "80-90", "90-100"}
	buckets := make([]ConfidenceBucket, len(ranges))
	for i, r := range ranges {
		buckets[i] = ConfidenceBucket{Range: r}
	}
	return buckets
}

// rankBySpreadError returns the up-to-3 best (lowest error) and worst
// (highest error) predictions of the week.
func rankBySpreadError(results []models.BacktestResult) (best, worst []GameSummary) {
	summaries := make([]GameSummary, len(results))
	for i := range results {
		summaries[i] = GameSummary{
			MatchupID:       results[i].Prediction.MatchupID,
			PredictedSpread: results[i].Prediction.Spread,
			ActualSpread:    results[i].ActualSpread,
			SpreadError:     results[i].SpreadError,
		}
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].SpreadError < summaries[j].SpreadError
	})

	n := len(summaries)
	top := n
	if top > 3 {
		top = 3
	}
	best = append(best, summaries[:top]...)
	for i := n - 1; i >= n-top; i-- {
		worst = append(worst, summaries[i])
	}
	return best, worst
}

// WeeklyComparison reports week-over-week deltas between two consecutive
// weeks' metrics. Positive deltas mean the later week improved, except for
// the error fields where lower is better and the delta is still cur-prev.
type WeeklyComparison struct {
	PrevWeek int `json:"prevWeek"`
	CurWeek  int `json:"curWeek"`

	WinnerAccuracyDelta float64 `json:"winnerAccuracyDelta"`
	SpreadAccuracyDelta float64 `json:"spreadAccuracyDelta"`
	TotalAccuracyDelta  float64 `json:"totalAccuracyDelta"`
	AvgSpreadErrorDelta float64 `json:"avgSpreadErrorDelta"`
	AvgTotalErrorDelta  float64 `json:"avgTotalErrorDelta"`
	ROIDelta            float64 `json:"roiDelta"`
}

// CompareWeeks computes deltas from prev to cur.
func CompareWeeks(prev, cur WeeklyMetrics) WeeklyComparison {
	return WeeklyComparison{
		PrevWeek:            prev.Week,
		CurWeek:             cur.Week,
		WinnerAccuracyDelta: cur.WinnerAccuracy - prev.WinnerAccuracy,
		SpreadAccuracyDelta: cur.SpreadAccuracy - prev.SpreadAccuracy,
		TotalAccuracyDelta:  cur.TotalAccuracy - prev.TotalAccuracy,
		AvgSpreadErrorDelta: cur.AvgSpreadError - prev.AvgSpreadError,
		AvgTotalErrorDelta:  cur.AvgTotalError - prev.AvgTotalError,
		ROIDelta:            cur.ROIPercent - prev.ROIPercent,
	}
}

// String renders a compact one-line summary for logs.
func (m WeeklyMetrics) String() string {
	return fmt.Sprintf("week %d: %d games, winner %.1f%%, spread %.1f%%, roi %.2f%%",
		m.Week, m.Games, m.WinnerAccuracy, m.SpreadAccuracy, m.ROIPercent)
}
