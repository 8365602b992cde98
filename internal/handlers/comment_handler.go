package handlers

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CommentStore is the comment half of the resource store.
type CommentStore interface {
	Add(ctx context.Context, goodsID uuid.UUID, req *dto.CommentRequest) (uuid.UUID, error)
	Update(ctx context.Context, goodsID, commentID uuid.UUID, req *dto.CommentRequest) error
	Delete(ctx context.Context, goodsID, commentID uuid.UUID) error
}

type CommentHandler struct {
	comments CommentStore
}

func NewCommentHandler(comments CommentStore) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	goodsID, ok := paramUUID(c, "id")
	if !ok {
		return notFound(c, "Goods not found")
	}

	var req dto.CommentRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, bodyErrorMessage(err))
	}

	id, err := h.comments.Add(c.UserContext(), goodsID, &req)
	if err != nil {
		return fail(c, err, "add comment")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CommentResponse{
		Message:    "Comments added successfully",
		CommentsID: id,
	})
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	goodsID, ok1 := paramUUID(c, "goodsId")
	commentID, ok2 := paramUUID(c, "commentsId")
	if !ok1 || !ok2 {
		return notFound(c, "Goods or comments not found")
	}

	var req dto.CommentRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, bodyErrorMessage(err))
	}

	if err := h.comments.Update(c.UserContext(), goodsID, commentID, &req); err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return notFound(c, "Goods or comments not found")
		}
		return fail(c, err, "update comment")
	}

	return c.JSON(dto.CommentResponse{
		Message:    "Comments updated successfully",
		CommentsID: commentID,
	})
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	goodsID, ok := paramUUID(c, "goodsId")
	if !ok {
		return notFound(c, "Goods not found")
	}
	commentID, ok := paramUUID(c, "commentsId")
	if !ok {
		return notFound(c, "Comments not found")
	}

	if err := h.comments.Delete(c.UserContext(), goodsID, commentID); err != nil {
		return fail(c, err, "delete comment")
	}
	return c.JSON(dto.MessageResponse{Message: "Comments deleted successfully"})
}
