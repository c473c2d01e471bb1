package server

import (
	"path/filepath"
	"strings"

	"github.com/fabriciorsa/Guia-Ligiane/internal/config"
	"github.com/fabriciorsa/Guia-Ligiane/internal/tour"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Server struct {
	App *fiber.App
	Cfg config.Config
	DB  *pgxpool.Pool
}

func NewServer(cfg config.Config, db *pgxpool.Pool) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())

	if cfg.CorsOrigins != "" {
		app.Use(cors.New(cors.Config{AllowOrigins: cfg.CorsOrigins}))
	}

	s := &Server{
		App: app,
		Cfg: cfg,
		DB:  db,
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.App.Group("/api")
	tour.RegisterRoutes(api.Group("/tours"), tour.NewService(s.DB))

	// Serve the built site and route everything outside /api back to the
	// SPA entry point.
	if s.Cfg.StaticDir != "" {
		s.App.Static("/", s.Cfg.StaticDir)
		s.App.Get("/*", func(c *fiber.Ctx) error {
			if strings.HasPrefix(c.Path(), "/api") {
				return fiber.ErrNotFound
			}
			return c.SendFile(filepath.Join(s.Cfg.StaticDir, "index.html"))
		})
	}
}
