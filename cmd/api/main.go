package main

import (
	"context"
	"os"

	"github.com/yigit/university/internal/pkg/logger"
	"github.com/yigit/university/internal/server"
)

// @title University Courses API
// @version 1.0
// @description Administration API for students, courses and enrollments

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
