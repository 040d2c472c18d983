package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tinashecee/lab-center-request/internal/app"
	"github.com/tinashecee/lab-center-request/internal/logx"
	"github.com/tinashecee/lab-center-request/internal/relay"
)

func main() {
	cfg, err := relay.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// Credential check is a fatal startup precondition: no credential, no
	// traffic.
	if err := relay.ValidateCredentials(cfg.CredentialsFile); err != nil {
		log.Fatalf("credential check failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := app.NewLogger()

	sender, err := relay.NewFCMSender(ctx, cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("push gateway init error: %v", err)
	}

	h := relay.NewHandlers(sender, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           relay.NewRouter(h, cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("relay listening", logx.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down relay")

	shCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}
