package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"user-api/internal/comment"
	"user-api/internal/config"
	"user-api/internal/greeting"
	"user-api/internal/middleware"
	"user-api/internal/store"
	"user-api/internal/user"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	ctx := context.Background()

	// ── MongoDB ──────────────────────────────────────────────
	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatalf("mongo connect: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDB)

	users := store.NewUserStore(db, logger)
	greetings := store.NewGreetingStore(db, logger)
	comments := store.NewCommentStore(db, logger)

	// ── Handlers ─────────────────────────────────────────────
	userHandler := user.NewHandler(user.NewService(users))
	greetingHandler := greeting.NewHandler(greeting.NewService(greetings))
	commentHandler := comment.NewHandler(comment.NewService(comments))

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", userHandler.Create)
		r.Get("/", userHandler.List)
		r.Get("/{id}", userHandler.Get)
		r.Patch("/{id}", userHandler.Patch)
		r.Put("/{id}", userHandler.Update)
		r.Delete("/{id}", userHandler.Delete)
	})

	r.Route("/api/hello", func(r chi.Router) {
		r.Get("/", greetingHandler.Get)
		r.Post("/", greetingHandler.Update)
	})

	r.Route("/api/comments", func(r chi.Router) {
		r.Post("/", commentHandler.Create)
		r.Get("/user/{userId}", commentHandler.ListByUser)
		r.Delete("/{id}", commentHandler.Delete)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Infof("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
