package models

import (
	"time"

	"github.com/google/uuid"
)

type Goods struct {
	ID        uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	ItemCode  string        `gorm:"size:100;not null;index" json:"itemCode"`
	Brand     BrandSnapshot `gorm:"embedded;embeddedPrefix:brand_" json:"brand"`
	Address   string        `gorm:"type:text;not null" json:"address"`
	Urgency   string        `gorm:"size:50;not null" json:"urgency"`
	RecvDate  RecvDate      `gorm:"embedded;embeddedPrefix:recv_" json:"recvDate"`
	Comments  []Comment     `gorm:"foreignKey:GoodsID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt time.Time     `json:"-"`
	UpdatedAt time.Time     `json:"-"`
}

// BrandSnapshot is a copy of a Brand taken when the goods were created or
// last fully updated. It is not a foreign key.
type BrandSnapshot struct {
	ID       uuid.UUID `gorm:"type:uuid" json:"_id"`
	Code     string    `gorm:"size:100" json:"code"`
	Name     string    `gorm:"size:255;index" json:"name"`
	Category string    `gorm:"size:100" json:"category"`
}

// RecvDate is a calendar date stored as separate integer columns so that
// search can match each part exactly.
type RecvDate struct {
	Year  int `gorm:"not null;index" json:"year"`
	Month int `gorm:"not null" json:"month"`
	Day   int `gorm:"not null" json:"day"`
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) RecvDate {
	y, m, d := t.Date()
	return RecvDate{Year: y, Month: int(m), Day: d}
}

func (Goods) TableName() string {
	return "goods"
}
