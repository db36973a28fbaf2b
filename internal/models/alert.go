package models

type AlertDirection string

const (
	AlertAbove AlertDirection = "above"
	AlertBelow AlertDirection = "below"
)

// PriceAlert is a premium feature: notify the user when a symbol crosses
// a threshold. Evaluation happens in the market-data pipeline; this core
// only owns the rule CRUD.
type PriceAlert struct {
	BaseModel
	UserID    string         `gorm:"not null;index"`
	Symbol    string         `gorm:"not null"`
	Direction AlertDirection `gorm:"type:varchar(10);not null"`
	Threshold float64        `gorm:"not null"`
	Enabled   bool           `gorm:"default:true"`
}
