package models

import "time"

type User struct {
	BaseModel
	Email    string `gorm:"uniqueIndex;not null"`
	FullName string

	// PasswordHash is empty for accounts created through an OAuth
	// provider that never set a local password.
	PasswordHash string
	GoogleID     string `gorm:"index"`

	IsVerified bool `gorm:"default:false"`
	IsPremium  bool `gorm:"default:false"`

	// Single-use tokens stored on the row with a store-side expiry.
	// Consuming a token clears the column in the same update.
	VerificationToken    string `gorm:"index"`
	VerificationTokenExp *time.Time
	ResetToken           string `gorm:"index"`
	ResetTokenExp        *time.Time

	// Relations
	Watchlists []Watchlist  `gorm:"foreignKey:UserID"`
	Holdings   []Holding    `gorm:"foreignKey:UserID"`
	Alerts     []PriceAlert `gorm:"foreignKey:UserID"`
}

// HasPassword reports whether the account supports password login.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
