package dto

type CalculationRequest struct {
	StockCode          string  `json:"stock_code"`
	StockName          string  `json:"stock_name"`
	ExistingQuantity   int     `json:"existing_quantity"`
	ExistingAvgPrice   float64 `json:"existing_avg_price"`
	AdditionalQuantity int     `json:"additional_quantity"`
	AdditionalPrice    float64 `json:"additional_price"`
}
