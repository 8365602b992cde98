package database

import (
	"encoding/json"
	"os"

	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type brandSeed struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Category string `json:"category"`
}

// SeedBrands inserts the brands listed in the JSON file at path. Brands
// whose name already exists are left untouched. An empty path is a no-op.
func SeedBrands(db *gorm.DB, path string) (int64, error) {
	if path == "" {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(err, "read brand seed file")
	}

	brands, err := parseBrandSeed(data)
	if err != nil {
		return 0, err
	}
	if len(brands) == 0 {
		return 0, nil
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&brands)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "seed brands")
	}

	return result.RowsAffected, nil
}

func parseBrandSeed(data []byte) ([]models.Brand, error) {
	var seeds []brandSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, errors.Wrap(err, "parse brand seed file")
	}

	brands := make([]models.Brand, 0, len(seeds))
	for i, s := range seeds {
		if s.Name == "" {
			return nil, errors.Errorf("brand seed entry %d has no name", i)
		}
		brands = append(brands, models.Brand{
			ID:       uuid.New(),
			Name:     s.Name,
			Code:     s.Code,
			Category: s.Category,
		})
	}
	return brands, nil
}
