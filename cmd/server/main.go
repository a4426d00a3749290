package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/mailer"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	contactRepo := repository.NewPgContactRepository(pool)
	if err := contactRepo.EnsureSchema(ctx); err != nil {
		logging.Fatal("failed to ensure schema", "error", err)
	}

	notifier := mailer.NewSMTPNotifier(
		cfg.MailSMTPHost,
		cfg.MailSMTPPort,
		cfg.MailSMTPAddress,
		cfg.MailAppPassword,
		cfg.MailRecipient,
	)
	contactService := service.NewContactService(contactRepo, notifier)

	secret := session.SecretBytes(cfg.SessionSecret)
	contactHandler := handler.NewContactHandler(contactService, secret)
	healthHandler := handler.NewHealthHandler(pool)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", contactHandler.Show)
	mux.HandleFunc("POST /{$}", contactHandler.Submit)
	mux.HandleFunc("GET /api/health", healthHandler.Health)

	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler.RequestID(handler.RequestLogger(mux)),
		ReadTimeout: 10 * time.Second,
		// Long enough to cover a slow mail relay; the notifier blocks the
		// request until the relay responds.
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
