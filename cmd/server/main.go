package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Mahidhar1516/GNI/internal/app"
	"github.com/Mahidhar1516/GNI/internal/logger"
)

const version = "1.0.0"

func main() {
	// Local development only; in k8s everything comes from the environment.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	log := logger.NewWithServiceContext("student-portal", version)
	slog.SetDefault(log)

	application, err := app.New(log)
	if err != nil {
		log.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := application.Run(); err != nil {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
