package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GoodsStore is the goods half of the resource store.
type GoodsStore interface {
	List(ctx context.Context) ([]dto.GoodsSummary, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.GoodsDetail, error)
	Search(ctx context.Context, f services.SearchFilter) ([]dto.GoodsSearchResult, error)
	Create(ctx context.Context, req *dto.CreateGoodsRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateGoodsRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoodsHandler struct {
	goods GoodsStore
}

func NewGoodsHandler(goods GoodsStore) *GoodsHandler {
	return &GoodsHandler{goods: goods}
}

func (h *GoodsHandler) List(c *fiber.Ctx) error {
	goods, err := h.goods.List(c.UserContext())
	if err != nil {
		return fail(c, err, "list goods")
	}
	return c.JSON(dto.GoodsListResponse{Goods: goods})
}

func (h *GoodsHandler) Get(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return notFound(c, "Goods not found")
	}

	goods, err := h.goods.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err, "get goods")
	}
	return c.JSON(goods)
}

func (h *GoodsHandler) Search(c *fiber.Ctx) error {
	filter := services.SearchFilter{
		Brand:    c.Query("brand"),
		Urgency:  c.Query("urgency"),
		Address:  c.Query("address"),
		ItemCode: c.Query("itemCode"),
	}

	var err error
	if filter.Day, err = queryInt(c, "day"); err != nil {
		return badRequest(c, "day must be an integer")
	}
	if filter.Month, err = queryInt(c, "month"); err != nil {
		return badRequest(c, "month must be an integer")
	}
	if filter.Year, err = queryInt(c, "year"); err != nil {
		return badRequest(c, "year must be an integer")
	}

	goods, err := h.goods.Search(c.UserContext(), filter)
	if err != nil {
		return fail(c, err, "search goods")
	}
	return c.JSON(dto.GoodsSearchResponse{Goods: goods})
}

func (h *GoodsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGoodsRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, bodyErrorMessage(err))
	}

	id, err := h.goods.Create(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, "create goods")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateGoodsResponse{
		Message: "Goods created successfully",
		GoodsID: id,
	})
}

func (h *GoodsHandler) Update(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return notFound(c, "Goods not found")
	}

	var req dto.UpdateGoodsRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, bodyErrorMessage(err))
	}

	if err := h.goods.Update(c.UserContext(), id, &req); err != nil {
		return fail(c, err, "update goods")
	}
	return c.JSON(dto.MessageResponse{Message: "Goods updated successfully"})
}

func (h *GoodsHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return notFound(c, "Goods not found")
	}

	if err := h.goods.Delete(c.UserContext(), id); err != nil {
		return fail(c, err, "delete goods")
	}
	return c.JSON(dto.MessageResponse{Message: "Goods deleted successfully"})
}

// queryInt returns nil when the parameter is absent.
func queryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func bodyErrorMessage(err error) string {
	if errors.Is(err, errMissingFields) {
		return "Missing required fields"
	}
	return "Invalid request body"
}
