package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"tradepost/internal/apperr"
	"tradepost/internal/auth"
	"tradepost/internal/config"
	"tradepost/internal/http/handlers"
	applog "tradepost/internal/log"
	"tradepost/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	var sink io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			sink = io.MultiWriter(os.Stdout, f)
		}
	}
	applog.Init(sink)

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status, msg := apperr.StatusOf(err)
			if status == fiber.StatusInternalServerError {
				applog.Error(c, "server.error", err, nil)
			}
			return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	deps := handlers.NewDeps(db, tokens)
	guard := handlers.RequireUser(tokens)

	// ---------- Routes ----------
	users := app.Group("/users")
	users.Post("/signup", deps.AccountHandler.Signup)
	users.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false, "message": "Too many attempts. Please try again later.",
			})
		},
	}), deps.AccountHandler.Login)
	users.Patch("/edit", guard, deps.AccountHandler.EditProfile)

	product := app.Group("/product", guard)
	product.Post("/add", deps.ProductHandler.Add)
	product.Get("/", deps.ProductHandler.List)
	product.Get("/search", deps.ProductHandler.Search)
	product.Get("/detail", deps.ProductHandler.Detail)
	product.Patch("/", deps.ProductHandler.Edit)
	product.Delete("/", deps.ProductHandler.Delete)

	app.Get("/common/config", deps.CommonHandler.AppConfig)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Not found."})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
