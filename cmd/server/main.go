package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Krisna-19/dealcompare/internal/app"
	"github.com/Krisna-19/dealcompare/internal/config"
	"github.com/Krisna-19/dealcompare/internal/logger"
	"go.uber.org/zap"
)

func main() {
	ctx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	opts := config.NewOptions()
	opts.ParseFlags()

	lg, err := logger.New(opts.LogLevel())
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}

	a := app.New(opts, lg)

	srv := &http.Server{
		Addr:    opts.RunAddr(),
		Handler: a.Router,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		sig := <-sigCh
		lg.Info("initiating graceful shutdown", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			lg.Error("graceful shutdown error", zap.Error(err))
		}
		rootCancel()
		close(idleConnsClosed)
	}()

	lg.Info("starting server", zap.String("addr", opts.RunAddr()))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Error("server error", zap.Error(err))
		os.Exit(1)
	}
	<-idleConnsClosed
	lg.Info("server stopped")
}
