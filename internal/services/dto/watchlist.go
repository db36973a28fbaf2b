package dto

import "time"

type CreateWatchlistRequest struct {
	Name string `json:"name" binding:"required,max=60"`
}

type AddSymbolRequest struct {
	Symbol string `json:"symbol" binding:"required,max=12"`
}

type WatchlistResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Symbols   []string  `json:"symbols"`
	CreatedAt time.Time `json:"createdAt"`
}
