package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"critterbook/internal/config"
	appgraphql "critterbook/internal/graphql"
	apphttp "critterbook/internal/http"
	"critterbook/internal/repository/sqlite"
	"critterbook/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(ctx, db); err != nil {
		logger.Fatalf("migrate database: %v", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)
	animalRepo := sqlite.NewAnimalRepository(db)
	noteRepo := sqlite.NewNoteRepository(db)

	if swept, err := sessionRepo.DeleteExpired(ctx); err != nil {
		logger.Warnf("sweep expired sessions: %v", err)
	} else if swept > 0 {
		logger.Infof("swept %d expired sessions", swept)
	}

	authService := service.NewAuthService(userRepo, sessionRepo)
	animalService := service.NewAnimalService(animalRepo)
	noteService := service.NewNoteService(noteRepo)

	schema, err := appgraphql.NewSchema(authService, animalService, noteService, logger)
	if err != nil {
		logger.Fatalf("build schema: %v", err)
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(schema, logger, cfg.Production())
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
