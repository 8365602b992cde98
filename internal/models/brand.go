package models

import "github.com/google/uuid"

// Brand is reference data seeded outside the API and looked up by name.
type Brand struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name     string    `gorm:"not null;size:255;uniqueIndex:idx_brands_name" json:"name"`
	Code     string    `gorm:"size:100" json:"code"`
	Category string    `gorm:"size:100" json:"category"`
}

// Snapshot copies the brand into the denormalized form stored on goods.
func (b *Brand) Snapshot() BrandSnapshot {
	return BrandSnapshot{
		ID:       b.ID,
		Code:     b.Code,
		Name:     b.Name,
		Category: b.Category,
	}
}
