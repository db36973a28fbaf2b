package models

// Holding is a position in the user's portfolio: how many shares were
// bought and at what average cost.
type Holding struct {
	BaseModel
	UserID   string  `gorm:"not null;index;uniqueIndex:idx_user_symbol"`
	Symbol   string  `gorm:"not null;uniqueIndex:idx_user_symbol"`
	Quantity float64 `gorm:"not null"`
	AvgCost  float64 `gorm:"not null"`
}
