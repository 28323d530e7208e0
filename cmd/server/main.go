package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gamecollector/backend/internal/config"
	"gamecollector/backend/internal/handler"
	"gamecollector/backend/internal/logging"
	"gamecollector/backend/internal/service"
	"gamecollector/backend/internal/store"

	// Swagger imports
	_ "gamecollector/backend/docs" // This is important for swag to find the generated docs
)

const shutdownTimeout = 5 * time.Second

func init() {
	config.LoadConfig()
}

// @title           Gamecollector API
// @version         1.0
// @description     API for managing a collection of game systems and video games.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := config.NewRepository(&config.Loader{Client: http.DefaultClient})
	settings, err := repo.Update(ctx, config.AppConfig.Source())
	if err != nil {
		log.Fatalf("Unable to load settings, %v", err)
	}

	logger, err := logging.New(logging.Options{Level: settings.LogLevel, File: settings.LogFile})
	if err != nil {
		log.Fatalf("Unable to configure logging, %v", err)
	}
	gin.SetMode(settings.GinMode)

	router, err := buildRouter(settings, logger)
	if err != nil {
		logger.WithError(err).Fatal("unable to build router")
	}

	srv := &http.Server{
		Addr:              ":" + config.AppConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("http server failed")
			stop()
		}
	}()

	logger.Infof("Server is running on :%s", config.AppConfig.Port)
	logger.Infof("Swagger UI is available at http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("http shutdown failed")
	}
}

// buildRouter wires stores, services and handlers, applying the seed file
// named in settings when there is one.
func buildRouter(settings config.Settings, logger logrus.FieldLogger) (*gin.Engine, error) {
	systems := store.NewGameSystemStore()
	games := store.NewVideoGameStore()

	if settings.SeedFile != "" {
		seed, err := store.LoadSeed(settings.SeedFile)
		if err != nil {
			return nil, err
		}
		seed.Apply(systems, games)
		logger.WithFields(logrus.Fields{
			"gamesystems": systems.Len(),
			"videogames":  games.Len(),
		}).Info("seed applied")
	}

	gameSystems := service.NewGameSystemService(systems, games, logger)
	videoGames := service.NewVideoGameService(games, gameSystems, logger)

	return handler.NewRouter(handler.Services{
		GameSystems: gameSystems,
		VideoGames:  videoGames,
	}, logger), nil
}
