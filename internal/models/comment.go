package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to exactly one Goods. Seq is assigned on insert and
// never rewritten, so ordering by it gives append order even after edits.
type Comment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	GoodsID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Seq          int64     `gorm:"autoIncrement;not null;index" json:"-"`
	Reply        string    `gorm:"type:text;not null" json:"reply"`
	Note         string    `gorm:"type:text;not null" json:"note"`
	OrderRemarks string    `gorm:"type:text;not null" json:"orderRemarks"`
	Date         time.Time `gorm:"not null" json:"date"`
}

func (Comment) TableName() string {
	return "goods_comments"
}
