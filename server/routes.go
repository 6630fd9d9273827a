package server

import (
	"github.com/gofiber/fiber/v3"
)

func (s *Server) setupRoutes() {
	s.app.Post("/api/enhance", s.enhanceHandler)
	s.app.Post("/api/upload", s.uploadHandler)

	s.app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})
}
