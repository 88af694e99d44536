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

	"github.com/joho/godotenv"

	"github.com/zhalobnik/backend/internal/config"
	"github.com/zhalobnik/backend/internal/handler"
	"github.com/zhalobnik/backend/internal/model/recipient"
	"github.com/zhalobnik/backend/internal/service/ai"
	dialogService "github.com/zhalobnik/backend/internal/service/dialog"
	"github.com/zhalobnik/backend/internal/service/flow"
	"github.com/zhalobnik/backend/internal/service/send"
	"github.com/zhalobnik/backend/internal/service/suggest"
	"github.com/zhalobnik/backend/internal/service/verify"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	registry := recipient.NewMemoryStore(
		recipient.SeedDirectory(),
		recipient.SeedRecommendations(),
		recipient.SeedCategories(),
	)
	sessions := dialogService.NewService(cfg.Drafts.Dir)

	aiSvc, err := ai.NewService(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize AI service: %v", err)
	}

	verifier, err := verify.NewService(ctx, cfg.AI, cfg.Verify)
	if err != nil {
		log.Fatalf("failed to initialize verification service: %v", err)
	}

	sender := send.NewService(cfg.SMTP)
	if sender.Configured() {
		log.Println("SMTP delivery enabled")
	} else {
		log.Println("SMTP not configured, documents are prepared for manual submission")
	}

	suggestClient := suggest.NewClient(cfg.DaData)
	if !suggestClient.Enabled() {
		log.Println("DaData key not configured, autocomplete returns empty suggestions")
	}

	machine := flow.NewMachine(aiSvc, aiSvc, aiSvc, verifier, sender, registry)

	router := handler.NewRouter(sessions, machine, suggestClient)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Zhalobnik backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
