package models

import "time"

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Price       *float64 `json:"price"`
	Color       *string  `gorm:"size:255" json:"color"`

	CreatedAt time.Time `gorm:"autoCreateTime;<-:create" json:"createdAt"`
}
