// Package accounting implements the position arithmetic used by the
// portfolio and calculation services: weighted-average cost recomputation on
// a buy-in, valuation of a held position, and profit/loss derivation. All
// functions are pure; they carry no entity identity and touch no storage.
package accounting

import (
	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
)

// BuyResult is the outcome of averaging an additional buy into a holding.
type BuyResult struct {
	NewAveragePrice  float64
	NewTotalQuantity int
}

// RecomputeAverageOnBuy folds an additional purchase into an existing
// holding:
//
//	newAvg = (priorQty*priorAvg + qty*price) / (priorQty + qty)
//
// priorQuantity == 0 is the valid first-buy case and short-circuits to the
// incoming price rather than relying on the general formula reproducing it
// through floating point.
func RecomputeAverageOnBuy(priorQuantity int, priorAvgPrice float64, quantity int, price float64) (BuyResult, error) {
	if priorQuantity < 0 {
		return BuyResult{}, apperr.Invalidf("existing quantity must not be negative, got %d", priorQuantity)
	}
	if priorAvgPrice < 0 {
		return BuyResult{}, apperr.Invalidf("existing average price must not be negative, got %v", priorAvgPrice)
	}
	if quantity <= 0 {
		return BuyResult{}, apperr.Invalidf("additional quantity must be positive, got %d", quantity)
	}
	if price <= 0 {
		return BuyResult{}, apperr.Invalidf("additional price must be positive, got %v", price)
	}

	total := priorQuantity + quantity
	if total == 0 {
		return BuyResult{}, apperr.Invalidf("total quantity is zero")
	}

	if priorQuantity == 0 {
		return BuyResult{NewAveragePrice: price, NewTotalQuantity: total}, nil
	}

	cost := float64(priorQuantity)*priorAvgPrice + float64(quantity)*price
	return BuyResult{
		NewAveragePrice:  cost / float64(total),
		NewTotalQuantity: total,
	}, nil
}

// Valuation derives the effective current price and evaluation amount of a
// holding. A missing current price falls back to the average price, so a
// freshly created position values at exactly its cost basis.
func Valuation(quantity int, currentPrice *float64, averagePrice float64) (price, evaluationAmount float64) {
	price = averagePrice
	if currentPrice != nil {
		price = *currentPrice
	}
	return price, price * float64(quantity)
}

// ProfitAndLoss returns the absolute and relative gain of an evaluation over
// the invested amount. A zero investment reports 0% rather than failing;
// callers must not read 0% as "no position".
func ProfitAndLoss(evaluationAmount, totalInvestment float64) (profitLoss, ratePercent float64) {
	profitLoss = evaluationAmount - totalInvestment
	if totalInvestment > 0 {
		ratePercent = profitLoss / totalInvestment * 100
	}
	return profitLoss, ratePercent
}

// Line is one position's contribution to a portfolio total.
type Line struct {
	TotalInvestment  float64
	EvaluationAmount float64
}

// Summary is the portfolio-level aggregate of many lines.
type Summary struct {
	TotalInvestment  float64
	EvaluationAmount float64
	ProfitLoss       float64
	ProfitLossRate   float64
}

// Aggregate sums investment and evaluation across lines and reapplies the
// profit/loss formula on the sums. Averaging the per-line rates instead
// would misreport portfolios with uneven position sizes.
func Aggregate(lines []Line) Summary {
	var s Summary
	for _, line := range lines {
		s.TotalInvestment += line.TotalInvestment
		s.EvaluationAmount += line.EvaluationAmount
	}
	s.ProfitLoss, s.ProfitLossRate = ProfitAndLoss(s.EvaluationAmount, s.TotalInvestment)
	return s
}
