package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validComment = &dto.CommentRequest{Reply: "ok", Note: "fragile", OrderRemarks: "leave at door"}

func TestCommentService_MissingFields(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCommentService(db)
	ctx := context.Background()

	incomplete := []*dto.CommentRequest{
		{Note: "n", OrderRemarks: "o"},
		{Reply: "r", OrderRemarks: "o"},
		{Reply: "r", Note: "n"},
	}
	for _, req := range incomplete {
		_, err := svc.Add(ctx, uuid.New(), req)
		assert.ErrorIs(t, err, ErrMissingFields)
		assert.ErrorIs(t, svc.Update(ctx, uuid.New(), uuid.New(), req), ErrMissingFields)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentService_Add_GoodsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCommentService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "goods" WHERE id = \$1 .*FOR SHARE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.Add(context.Background(), uuid.New(), validComment)
	assert.ErrorIs(t, err, ErrGoodsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentService_Add(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCommentService(db)
	goodsID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "goods" WHERE id = \$1 .*FOR SHARE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(goodsID.String()))
	mock.ExpectQuery(`INSERT INTO "goods_comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(7))
	mock.ExpectCommit()

	id, err := svc.Add(context.Background(), goodsID, validComment)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentService_Update(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCommentService(db)
	stamp := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return stamp }

	mock.ExpectExec(`UPDATE "goods_comments" SET .* WHERE goods_id = \$\d+ AND id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := svc.Update(context.Background(), uuid.New(), uuid.New(), validComment)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	mock.ExpectExec(`UPDATE "goods_comments" SET "date"=\$1,"note"=\$2,"order_remarks"=\$3,"reply"=\$4 WHERE`).
		WithArgs(stamp, "fragile", "leave at door", "ok", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	err = svc.Update(context.Background(), uuid.New(), uuid.New(), validComment)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentService_Delete(t *testing.T) {
	const countGoods = `SELECT count\(\*\) FROM "goods" WHERE id = \$1`
	const deleteComment = `DELETE FROM "goods_comments" WHERE goods_id = \$1 AND id = \$2`

	t.Run("goods missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewCommentService(db)

		mock.ExpectQuery(countGoods).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := svc.Delete(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, ErrGoodsNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("comment missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewCommentService(db)

		mock.ExpectQuery(countGoods).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectExec(deleteComment).WillReturnResult(sqlmock.NewResult(0, 0))

		err := svc.Delete(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, ErrCommentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewCommentService(db)
		goodsID, commentID := uuid.New(), uuid.New()

		mock.ExpectQuery(countGoods).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectExec(deleteComment).
			WithArgs(goodsID, commentID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, svc.Delete(context.Background(), goodsID, commentID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGoodsService_Get_CommentsInAppendOrder(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewGoodsService(db)
	goodsID := uuid.New()
	brandID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "goods" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "item_code", "brand_id", "brand_code", "brand_name", "brand_category",
			"address", "urgency", "recv_year", "recv_month", "recv_day",
		}).AddRow(goodsID.String(), "X1", brandID.String(), "AC", "Acme", "tools", "1 Main St", "high", 2024, 3, 5))

	// Comment 2 of 3 was deleted; the rest keep their relative order.
	c1, c3 := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "goods_comments" WHERE "goods_comments"."goods_id" = \$1 ORDER BY seq`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "goods_id", "seq", "reply", "note", "order_remarks", "date"}).
			AddRow(c1.String(), goodsID.String(), 1, "r1", "n1", "o1", time.Now()).
			AddRow(c3.String(), goodsID.String(), 3, "r3", "n3", "o3", time.Now()))

	got, err := svc.Get(context.Background(), goodsID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Brand.Name)
	assert.Equal(t, 2024, got.RecvDate.Year)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, c1, got.Comments[0].ID)
	assert.Equal(t, c3, got.Comments[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
