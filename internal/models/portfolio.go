package models

import "time"

// Position is one user's holding of a single instrument.
//
// TotalInvestment equals Quantity*AveragePrice at creation and drifts only
// through an explicit recomputation, never silently. CurrentPrice falls back
// to AveragePrice when it was never supplied.
type Position struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	StockCode       string    `json:"stock_code"`
	StockName       string    `json:"stock_name"`
	Quantity        int       `json:"quantity"`
	AveragePrice    float64   `json:"average_price"`
	TotalInvestment float64   `json:"total_investment"`
	CurrentPrice    *float64  `json:"current_price,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
