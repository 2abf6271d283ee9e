package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()

	var (
		db          repository.DB
		projectRepo repository.ProjectRepository
		contactRepo repository.ContactRepository
	)
	if cfg.UsesDatabase() {
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()

		pgProjects := repository.NewPgProjectRepository(pool)
		if err := pgProjects.Seed(ctx, repository.SeedProjects()); err != nil {
			logging.Fatal("failed to seed projects", "error", err)
		}
		db = pool
		projectRepo = pgProjects
		contactRepo = repository.NewPgContactRepository(pool)
		slog.Info("using postgres storage")
	} else {
		projectRepo = repository.NewMemProjectRepository(repository.SeedProjects())
		contactRepo = repository.NewMemContactRepository()
		slog.Info("using in-memory storage")
	}

	projectService := service.NewProjectService(projectRepo)
	contactService := service.NewContactService(contactRepo)

	router := handler.NewRouter(handler.Routes{
		Base:     handler.New(db, cfg.FrontendURL),
		Projects: handler.NewProjectHandler(projectService),
		Contacts: handler.NewContactHandler(contactService),
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "frontend_url", cfg.FrontendURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
