package models

import "time"

type Product struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"default:''" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Image       string    `gorm:"default:''" json:"image"`
	Category    string    `gorm:"default:''" json:"category"`
	Stock       int       `gorm:"default:0" json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}
