package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/avaldez/restogest/database"
	"github.com/avaldez/restogest/logger"
	"github.com/avaldez/restogest/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Warn().Msg("no .env file found, using environment")
	}
	logger.Setup(os.Getenv("LOG_LEVEL"))

	db, err := database.Connect()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to migrate database")
	}

	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Log.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatal().Err(err).Msg("server stopped")
	}
}
