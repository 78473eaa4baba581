package models

import "time"

type Athlete struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Country   string    `gorm:"size:100;not null" json:"country"`
	CreatedAt time.Time `json:"-"`
}
