package dto

import (
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/models"
	"github.com/google/uuid"
)

type CreateGoodsRequest struct {
	ItemCode string `json:"itemCode" validate:"required"`
	Brand    string `json:"brand" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Urgency  string `json:"urgency" validate:"required"`
	// RecvDate is accepted for compatibility and ignored; creation always
	// stamps the current date.
	RecvDate *models.RecvDate `json:"recvDate,omitempty"`
}

type UpdateGoodsRequest struct {
	ItemCode string           `json:"itemCode" validate:"required"`
	Brand    string           `json:"brand" validate:"required"`
	Address  string           `json:"address" validate:"required"`
	Urgency  string           `json:"urgency" validate:"required"`
	RecvDate *models.RecvDate `json:"recvDate" validate:"required"`
}

type CommentRequest struct {
	Reply        string `json:"reply" validate:"required"`
	Note         string `json:"note" validate:"required"`
	OrderRemarks string `json:"orderRemarks" validate:"required"`
}

// GoodsSummary is the projection returned by GET /goods.
type GoodsSummary struct {
	ID       uuid.UUID            `json:"_id"`
	ItemCode string               `json:"itemCode"`
	Brand    models.BrandSnapshot `json:"brand"`
	Address  string               `json:"address"`
	Urgency  string               `json:"urgency"`
	RecvDate models.RecvDate      `json:"recvDate"`
}

// GoodsDetail is a full goods record without its identifier.
type GoodsDetail struct {
	ItemCode string               `json:"itemCode"`
	Brand    models.BrandSnapshot `json:"brand"`
	Address  string               `json:"address"`
	Urgency  string               `json:"urgency"`
	RecvDate models.RecvDate      `json:"recvDate"`
	Comments []models.Comment     `json:"comments"`
}

type BrandName struct {
	Name string `json:"name"`
}

// GoodsSearchResult is the projection returned by GET /search_goods.
type GoodsSearchResult struct {
	ItemCode string          `json:"itemCode"`
	Address  string          `json:"address"`
	Urgency  string          `json:"urgency"`
	RecvDate models.RecvDate `json:"recvDate"`
	Brand    BrandName       `json:"brand"`
}

type GoodsListResponse struct {
	Goods []GoodsSummary `json:"goods"`
}

type GoodsSearchResponse struct {
	Goods []GoodsSearchResult `json:"goods"`
}

type CreateGoodsResponse struct {
	Message string    `json:"message"`
	GoodsID uuid.UUID `json:"goodsId"`
}

type CommentResponse struct {
	Message    string    `json:"message"`
	CommentsID uuid.UUID `json:"commentsId"`
}
