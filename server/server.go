package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/VoiceBooth-AI/voicebooth-go/booth"
)

type Server struct {
	app          *fiber.App
	orchestrator *booth.Orchestrator
}

func New(orchestrator *booth.Orchestrator) *Server {
	app := fiber.New(fiber.Config{
		// Above the 10 MiB validation cap so oversized uploads reach
		// the validator and get a proper error instead of a 413.
		BodyLimit: 12 * 1024 * 1024,
	})

	server := &Server{
		app:          app,
		orchestrator: orchestrator,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) Start(port string) {
	log.Info().Str("port", port).Msg("Starting voice booth server")

	err := s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
