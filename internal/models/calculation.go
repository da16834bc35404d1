package models

import "time"

// CalculationRecord is a point-in-time weighted-average buy-in calculation.
// It is a pure audit log: immutable after creation except for deletion.
type CalculationRecord struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	StockCode          string    `json:"stock_code"`
	StockName          string    `json:"stock_name"`
	ExistingQuantity   int       `json:"existing_quantity"`
	ExistingAvgPrice   float64   `json:"existing_avg_price"`
	AdditionalQuantity int       `json:"additional_quantity"`
	AdditionalPrice    float64   `json:"additional_price"`
	NewAveragePrice    float64   `json:"new_average_price"`
	NewTotalQuantity   int       `json:"new_total_quantity"`
	CreatedAt          time.Time `json:"created_at"`
}
