package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/virtnum/internal/app"
	"github.com/fsdevblog/virtnum/internal/config"
	"github.com/fsdevblog/virtnum/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	l := logger.New(os.Stdout)

	// .env не обязателен, переменные окружения имеют приоритет.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		l.WithError(err).Warn("load .env")
	}
	conf := config.MustLoadConfig()

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
