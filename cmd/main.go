// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"teacher_training_api/internal/config"
	"teacher_training_api/internal/handlers"
	"teacher_training_api/internal/middleware"
	"teacher_training_api/internal/repository"
	"teacher_training_api/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config is loaded.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === Initialize the slog logger from config ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Initialize the document store connection. A connect failure is not
	// fatal: the process keeps serving so /test can report the fault.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, db, err := repository.NewDB(ctx, config.Cfg.Database.URL, config.Cfg.Database.Name, logger)
	cancel()
	if err != nil {
		slog.Error("Database unavailable at startup, continuing without a connection", slog.Any("error", err))
	}
	if client != nil {
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				slog.Error("Error closing database connection", slog.Any("error", err))
			} else {
				slog.Info("Database connection closed.")
			}
		}()
	}

	// 3. Dependency Injection
	store := repository.NewMongoStore(db, logger)

	moduleService := service.NewModuleService(store, config.Cfg, logger)
	progressService := service.NewProgressService(store, logger)
	noteService := service.NewNoteService(store, logger)

	systemHandler := handlers.NewSystemHandler(store, logger)
	moduleHandler := handlers.NewModuleHandler(moduleService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)
	noteHandler := handlers.NewNoteHandler(noteService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Get("/", systemHandler.Root)
	r.Get("/test", systemHandler.TestDatabase)

	r.Route("/api", func(r chi.Router) {
		r.Post("/seed", moduleHandler.SeedModules)

		r.Route("/modules", func(r chi.Router) {
			r.Post("/", moduleHandler.PostModule)
			r.Get("/", moduleHandler.GetModules)
			r.Get("/{module_id}", moduleHandler.GetModule)
		})

		r.Route("/progress", func(r chi.Router) {
			r.Post("/", progressHandler.PostProgress)
			r.Get("/", progressHandler.GetProgress)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", noteHandler.PostNote)
			r.Get("/", noteHandler.GetNote)
		})
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
