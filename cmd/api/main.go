//	@title			Bees Media API
//	@version		1.0
//	@description	Song and video catalog backed by object storage, with per-item like/dislike counters.
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Operator JWT. Format: **Bearer {token}**

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/bees/mediahub/internal/catalog"
	"github.com/bees/mediahub/internal/config"
	"github.com/bees/mediahub/internal/db"
	"github.com/bees/mediahub/internal/logger"
	appMiddleware "github.com/bees/mediahub/internal/middleware"
	"github.com/bees/mediahub/internal/response"
	"github.com/bees/mediahub/internal/storage"
	"github.com/bees/mediahub/internal/vote"

	_ "github.com/bees/mediahub/docs/swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stderr, cfg.LogLevel, cfg.IsProduction())
	slog.SetDefault(log)

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		fatal("database connection failed", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		fatal("database migration failed", err)
	}

	store, err := storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StorageRegion,
		cfg.StorageUseSSL,
	)
	if err != nil {
		fatal("object storage init failed", err)
	}

	folders := make([]catalog.Folder, 0, len(cfg.MusicFolders))
	for _, f := range cfg.MusicFolders {
		folders = append(folders, catalog.Folder{Key: f.Key, Label: f.Label})
	}
	selector, err := catalog.NewFolderSelector(folders, cfg.MusicDefaultFolder)
	if err != nil {
		fatal("folder selector init failed", err)
	}

	// Wire dependencies: store → service → handler
	songSvc := catalog.NewAudioService(store, selector, cfg.MusicRoot, cfg.URLTTL, log)
	videoSvc := catalog.NewVideoService(store, cfg.VideoPrefix, cfg.URLTTL, log)
	catalogHandler := catalog.NewHandler(songSvc, videoSvc)

	voteRepo := vote.NewRepository(pool)
	voteSvc := vote.NewService(voteRepo)
	voteHandler := vote.NewHandler(voteSvc)

	voteLimiter := appMiddleware.NewRateLimiter(cfg.VoteRateLimitRPM)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Liveness
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{"status": "ok"})
	})

	// Readiness: both backing stores must answer
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			response.ServiceUnavailable(w, "vote store unavailable")
			return
		}
		if err := store.Ping(ctx); err != nil {
			response.ServiceUnavailable(w, "object store unavailable")
			return
		}
		response.OK(w, map[string]string{"status": "ready"})
	})

	// Swagger UI, available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/songs", catalogHandler.ListSongs)
		r.Get("/folders", catalogHandler.ListFolders)
		r.With(appMiddleware.RequireOperator(cfg.OperatorJWTSecret)).
			Post("/set-folder", catalogHandler.SetFolder)

		r.Get("/videos", catalogHandler.ListVideos)
		r.Get("/videos/random", catalogHandler.ListVideos)

		r.Route("/votes", func(r chi.Router) {
			r.Get("/", voteHandler.GetVotes)
			r.Group(func(r chi.Router) {
				r.Use(voteLimiter.Handler)
				r.Post("/like", voteHandler.Like)
				r.Post("/dislike", voteHandler.Dislike)
			})
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.AppEnv, "folder", selector.Current())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("server error", err)
		}
	}()

	<-quit
	log.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
		return
	}

	log.Info("server stopped")
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
