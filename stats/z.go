package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ZVal returns the two-tailed z-value for a confidence level given in
// percent, e.g. 1.96 for 95.
func ZVal(confidence float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidence/100) / 2)
}

// WinRate is an observed win fraction with a normal-approximation interval.
type WinRate struct {
	Rate float64
	Low  float64
	High float64
}

// WinRateInterval scores a draw as half a win. The interval is clamped to
// [0, 1].
func WinRateInterval(wins, draws, games int, confidence float64) WinRate {
	if games == 0 {
		return WinRate{}
	}
	p := (float64(wins) + float64(draws)/2) / float64(games)
	half := ZVal(confidence) * math.Sqrt(p*(1-p)/float64(games))
	return WinRate{
		Rate: p,
		Low:  math.Max(0, p-half),
		High: math.Min(1, p+half),
	}
}
