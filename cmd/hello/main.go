package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/logging"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	app := newApp(cfg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("hello server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
}

type echoResponse struct {
	Message   string `json:"message"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func newApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(middleware.CORS(cfg))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello world!"})
	})

	app.Get("/hello/:name", func(c *fiber.Ctx) error {
		return c.SendString("Hi, " + c.Params("name"))
	})

	app.Get("/echo", func(c *fiber.Ctx) error {
		return c.JSON(echoResponse{
			Message:   "Here are the query parameters you sent:",
			FirstName: c.Query("firstName"),
			LastName:  c.Query("lastName"),
		})
	})

	return app
}
