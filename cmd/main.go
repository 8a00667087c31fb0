package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JMURv/estate-backend/internal/auth"
	"github.com/JMURv/estate-backend/internal/auth/jwt"
	"github.com/JMURv/estate-backend/internal/auth/token"
	"github.com/JMURv/estate-backend/internal/cache/redis"
	"github.com/JMURv/estate-backend/internal/config"
	"github.com/JMURv/estate-backend/internal/ctrl"
	httphdl "github.com/JMURv/estate-backend/internal/hdl/http"
	"github.com/JMURv/estate-backend/internal/observability/metrics/prometheus"
	"github.com/JMURv/estate-backend/internal/observability/tracing/jaeger"
	"github.com/JMURv/estate-backend/internal/repo/db"
	"github.com/JMURv/estate-backend/internal/smtp"
	"github.com/JMURv/estate-backend/internal/ws"
	"go.uber.org/zap"
)

const configPath = "configs/local.config.yaml"

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	tokens := token.New(conf, repo)
	au := jwt.New(conf)
	hub := ws.NewHub()

	svc := ctrl.New(au, auth.New(), tokens, repo, cache, smtp.New(conf), hub)
	h := httphdl.New(au, svc, hub, conf.Auth.Cookie, tokens.TTL(token.FamilyRefresh))

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err := repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	os.Exit(0)
}
