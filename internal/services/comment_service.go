package services

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentService mutates the comments of a single goods record. Every
// mutation touches exactly one comment row, so concurrent edits of
// different comments on the same goods never overwrite each other.
type CommentService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db, now: time.Now}
}

func (s *CommentService) Add(ctx context.Context, goodsID uuid.UUID, req *dto.CommentRequest) (uuid.UUID, error) {
	if req.Reply == "" || req.Note == "" || req.OrderRemarks == "" {
		return uuid.Nil, ErrMissingFields
	}

	comment := models.Comment{
		ID:           uuid.New(),
		GoodsID:      goodsID,
		Reply:        req.Reply,
		Note:         req.Note,
		OrderRemarks: req.OrderRemarks,
		Date:         s.now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Share lock keeps the parent from being deleted under us.
		var parent models.Goods
		if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Select("id").
			First(&parent, "id = ?", goodsID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoodsNotFound
			}
			return errors.Wrap(err, "lock goods")
		}
		return errors.Wrap(tx.Create(&comment).Error, "insert comment")
	})
	if err != nil {
		return uuid.Nil, err
	}
	return comment.ID, nil
}

// Update replaces the comment in place and refreshes its date. It reports
// ErrCommentNotFound when either the goods or the comment does not exist.
func (s *CommentService) Update(ctx context.Context, goodsID, commentID uuid.UUID, req *dto.CommentRequest) error {
	if req.Reply == "" || req.Note == "" || req.OrderRemarks == "" {
		return ErrMissingFields
	}

	res := s.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("goods_id = ? AND id = ?", goodsID, commentID).
		Updates(map[string]interface{}{
			"reply":         req.Reply,
			"note":          req.Note,
			"order_remarks": req.OrderRemarks,
			"date":          s.now(),
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "update comment")
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (s *CommentService) Delete(ctx context.Context, goodsID, commentID uuid.UUID) error {
	db := s.db.WithContext(ctx)

	var n int64
	if err := db.Model(&models.Goods{}).Where("id = ?", goodsID).Count(&n).Error; err != nil {
		return errors.Wrap(err, "find goods")
	}
	if n == 0 {
		return ErrGoodsNotFound
	}

	res := db.Where("goods_id = ? AND id = ?", goodsID, commentID).Delete(&models.Comment{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete comment")
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
