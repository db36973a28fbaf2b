package dto

type UpsertHoldingRequest struct {
	Symbol   string  `json:"symbol" binding:"required,max=12"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	AvgCost  float64 `json:"avgCost" binding:"required,gt=0"`
}

type HoldingResponse struct {
	ID       string  `json:"id"`
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	AvgCost  float64 `json:"avgCost"`
}

// PortfolioSummary aggregates the cost basis of all holdings. Market
// value is a quote-provider concern and intentionally absent here.
type PortfolioSummary struct {
	Holdings  []HoldingResponse `json:"holdings"`
	CostBasis float64           `json:"costBasis"`
	Positions int               `json:"positions"`
}
