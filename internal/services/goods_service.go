package services

import (
	"context"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SearchFilter holds the optional search criteria. Nil date parts and empty
// strings impose no constraint.
type SearchFilter struct {
	Day      *int
	Month    *int
	Year     *int
	Brand    string
	Urgency  string
	Address  string
	ItemCode string
}

var summaryColumns = []string{
	"id", "item_code", "address", "urgency",
	"brand_id", "brand_code", "brand_name", "brand_category",
	"recv_year", "recv_month", "recv_day",
}

type GoodsService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGoodsService(db *gorm.DB) *GoodsService {
	return &GoodsService{db: db, now: time.Now}
}

func (s *GoodsService) List(ctx context.Context) ([]dto.GoodsSummary, error) {
	var rows []models.Goods
	if err := s.db.WithContext(ctx).
		Select(summaryColumns).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list goods")
	}

	out := make([]dto.GoodsSummary, 0, len(rows))
	for _, g := range rows {
		out = append(out, dto.GoodsSummary{
			ID:       g.ID,
			ItemCode: g.ItemCode,
			Brand:    g.Brand,
			Address:  g.Address,
			Urgency:  g.Urgency,
			RecvDate: g.RecvDate,
		})
	}
	return out, nil
}

func (s *GoodsService) Get(ctx context.Context, id uuid.UUID) (*dto.GoodsDetail, error) {
	var g models.Goods
	err := s.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq")
		}).
		First(&g, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoodsNotFound
		}
		return nil, errors.Wrap(err, "get goods")
	}

	comments := g.Comments
	if comments == nil {
		comments = []models.Comment{}
	}
	return &dto.GoodsDetail{
		ItemCode: g.ItemCode,
		Brand:    g.Brand,
		Address:  g.Address,
		Urgency:  g.Urgency,
		RecvDate: g.RecvDate,
		Comments: comments,
	}, nil
}

func (s *GoodsService) Search(ctx context.Context, f SearchFilter) ([]dto.GoodsSearchResult, error) {
	var rows []models.Goods
	if err := searchQuery(s.db.WithContext(ctx), f).
		Select("item_code", "address", "urgency", "brand_name", "recv_year", "recv_month", "recv_day").
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "search goods")
	}

	out := make([]dto.GoodsSearchResult, 0, len(rows))
	for _, g := range rows {
		out = append(out, dto.GoodsSearchResult{
			ItemCode: g.ItemCode,
			Address:  g.Address,
			Urgency:  g.Urgency,
			RecvDate: g.RecvDate,
			Brand:    dto.BrandName{Name: g.Brand.Name},
		})
	}
	return out, nil
}

// searchQuery ANDs together the criteria present in f. Date parts match
// exactly; text criteria are case-insensitive substring matches.
func searchQuery(db *gorm.DB, f SearchFilter) *gorm.DB {
	q := db.Model(&models.Goods{})
	if f.Year != nil {
		q = q.Where("recv_year = ?", *f.Year)
	}
	if f.Month != nil {
		q = q.Where("recv_month = ?", *f.Month)
	}
	if f.Day != nil {
		q = q.Where("recv_day = ?", *f.Day)
	}
	if f.Brand != "" {
		q = q.Where("brand_name ILIKE ?", containsPattern(f.Brand))
	}
	if f.Urgency != "" {
		q = q.Where("urgency ILIKE ?", containsPattern(f.Urgency))
	}
	if f.Address != "" {
		q = q.Where("address ILIKE ?", containsPattern(f.Address))
	}
	if f.ItemCode != "" {
		q = q.Where("item_code ILIKE ?", containsPattern(f.ItemCode))
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// Create stores new goods with today's date as the receipt date. Any
// receipt date on the request is ignored.
func (s *GoodsService) Create(ctx context.Context, req *dto.CreateGoodsRequest) (uuid.UUID, error) {
	if req.ItemCode == "" || req.Brand == "" || req.Address == "" || req.Urgency == "" {
		return uuid.Nil, ErrMissingFields
	}

	brand, err := s.resolveBrand(ctx, req.Brand)
	if err != nil {
		return uuid.Nil, err
	}

	goods := models.Goods{
		ID:       uuid.New(),
		ItemCode: req.ItemCode,
		Brand:    brand.Snapshot(),
		Address:  req.Address,
		Urgency:  req.Urgency,
		RecvDate: models.DateOf(s.now()),
	}

	if err := s.db.WithContext(ctx).Create(&goods).Error; err != nil {
		return uuid.Nil, errors.Wrap(err, "create goods")
	}
	return goods.ID, nil
}

// Update replaces every top-level field and re-snapshots the brand.
func (s *GoodsService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateGoodsRequest) error {
	if req.ItemCode == "" || req.Brand == "" || req.Address == "" || req.Urgency == "" || req.RecvDate == nil {
		return ErrMissingFields
	}
	if !validDate(*req.RecvDate) {
		return ErrInvalidDate
	}

	brand, err := s.resolveBrand(ctx, req.Brand)
	if err != nil {
		return err
	}

	snap := brand.Snapshot()
	res := s.db.WithContext(ctx).
		Model(&models.Goods{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"item_code":      req.ItemCode,
			"brand_id":       snap.ID,
			"brand_code":     snap.Code,
			"brand_name":     snap.Name,
			"brand_category": snap.Category,
			"address":        req.Address,
			"urgency":        req.Urgency,
			"recv_year":      req.RecvDate.Year,
			"recv_month":     req.RecvDate.Month,
			"recv_day":       req.RecvDate.Day,
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "update goods")
	}
	if res.RowsAffected == 0 {
		return ErrGoodsNotFound
	}
	return nil
}

func (s *GoodsService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Goods{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete goods")
	}
	if res.RowsAffected == 0 {
		return ErrGoodsNotFound
	}
	return nil
}

func (s *GoodsService) resolveBrand(ctx context.Context, name string) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidBrand
		}
		return nil, errors.Wrap(err, "resolve brand")
	}
	return &brand, nil
}

func validDate(d models.RecvDate) bool {
	if d.Year < 1 || d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Day() == d.Day
}
