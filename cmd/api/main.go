package main

import (
	"os"

	"github.com/huyndq/school-admin/internal/pkg/logger"
	"github.com/huyndq/school-admin/internal/server"
)

// @title School Admin API
// @version 1.0
// @description REST backend for school administration: teacher records, degree handling and the job-position catalog.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /api
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
