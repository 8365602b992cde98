package routes

import (
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	tokens *services.TokenService,
	authHandler *handlers.AuthHandler,
	goodsHandler *handlers.GoodsHandler,
	commentHandler *handlers.CommentHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/", handlers.Root)
	app.Get("/health", healthHandler.Check)

	// Goods
	app.Get("/goods", goodsHandler.List)
	app.Get("/goods/:id", goodsHandler.Get)
	app.Get("/search_goods", goodsHandler.Search)
	app.Post("/goods", goodsHandler.Create)
	app.Put("/goods/:id", goodsHandler.Update)
	app.Delete("/goods/:id", goodsHandler.Delete)

	// Comments, nested under their goods
	app.Post("/goods/:id/comments", commentHandler.Create)
	app.Put("/goods/:goodsId/comments/:commentsId", commentHandler.Update)
	app.Delete("/goods/:goodsId/comments/:commentsId", commentHandler.Delete)

	// Accounts
	app.Post("/users", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Protected
	app.Get("/profile", middleware.JWTProtected(tokens), authHandler.Profile)
}
