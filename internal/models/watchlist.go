package models

type Watchlist struct {
	BaseModel
	UserID string `gorm:"not null;index"`
	Name   string `gorm:"not null"`

	Items []WatchlistItem `gorm:"foreignKey:WatchlistID;constraint:OnDelete:CASCADE"`
}

type WatchlistItem struct {
	BaseModel
	WatchlistID string `gorm:"not null;index;uniqueIndex:idx_watchlist_symbol"`
	Symbol      string `gorm:"not null;uniqueIndex:idx_watchlist_symbol"`
}
