package models

import "time"

type Race struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	CreatedAt time.Time `json:"-"`
}
