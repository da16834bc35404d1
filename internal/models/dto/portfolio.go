package dto

import "time"

type PortfolioRequest struct {
	StockCode    string  `json:"stock_code"`
	StockName    string  `json:"stock_name"`
	Quantity     int     `json:"quantity"`
	AveragePrice float64 `json:"average_price"`
}

// PositionView is a position enriched with the derived valuation fields the
// UI renders. CurrentPrice is always populated (defaulted to the average
// price when the position never received one).
type PositionView struct {
	ID               int64     `json:"id"`
	StockCode        string    `json:"stock_code"`
	StockName        string    `json:"stock_name"`
	Quantity         int       `json:"quantity"`
	AveragePrice     float64   `json:"average_price"`
	CurrentPrice     float64   `json:"current_price"`
	TotalInvestment  float64   `json:"total_investment"`
	EvaluationAmount float64   `json:"evaluation_amount"`
	ProfitLoss       float64   `json:"profit_loss"`
	ProfitLossRate   float64   `json:"profit_loss_rate"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PortfolioSummary aggregates a whole portfolio. The rate is recomputed from
// the sums, not averaged across rows.
type PortfolioSummary struct {
	TotalInvestment  float64 `json:"total_investment"`
	EvaluationAmount float64 `json:"evaluation_amount"`
	ProfitLoss       float64 `json:"profit_loss"`
	ProfitLossRate   float64 `json:"profit_loss_rate"`
}

type PortfolioListResponse struct {
	Positions []PositionView   `json:"positions"`
	Summary   PortfolioSummary `json:"summary"`
}
