package dto

type CreateAlertRequest struct {
	Symbol    string  `json:"symbol" binding:"required,max=12"`
	Direction string  `json:"direction" binding:"required,oneof=above below"`
	Threshold float64 `json:"threshold" binding:"required,gt=0"`
}

type UpdateAlertRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type AlertResponse struct {
	ID        string  `json:"id"`
	Symbol    string  `json:"symbol"`
	Direction string  `json:"direction"`
	Threshold float64 `json:"threshold"`
	Enabled   bool    `json:"enabled"`
}
