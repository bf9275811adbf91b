package models

import "time"

// User belongs to exactly one Client for its whole lifetime.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"clientId"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	FirstName  string  `gorm:"size:255;not null" json:"firstName"`
	LastName   string  `gorm:"size:255;not null" json:"lastName"`
	Email      string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Address    *string `gorm:"size:255" json:"address"`
	PostalCode *string `gorm:"size:10" json:"postalCode"`
	City       *string `gorm:"size:255" json:"city"`

	CreatedAt time.Time `gorm:"autoCreateTime;<-:create" json:"createdAt"`
}
