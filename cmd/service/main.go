package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-service/internal/client/member"
	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/infra"
	"github.com/s21platform/stream-service/internal/notify"
	"github.com/s21platform/stream-service/internal/pkg/jwt"
	"github.com/s21platform/stream-service/internal/pkg/kafka"
	"github.com/s21platform/stream-service/internal/pkg/tx"
	"github.com/s21platform/stream-service/internal/pkg/validator"
	db "github.com/s21platform/stream-service/internal/repository/postgres"
	"github.com/s21platform/stream-service/internal/rest"
	"github.com/s21platform/stream-service/internal/service"
	streamsync "github.com/s21platform/stream-service/internal/sync"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	memberClient := member.New(cfg)
	defer memberClient.Close()

	brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}

	syncProducer := kafka.NewProducer(brokers, cfg.Kafka.SyncTopic)
	defer syncProducer.Close() //nolint:errcheck // .

	notificationProducer := kafka.NewProducer(brokers, cfg.Kafka.NotificationTopic)
	defer notificationProducer.Close() //nolint:errcheck // .

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Service.JWTSecret)

	streamService := service.New(
		dbRepo,
		memberClient,
		streamsync.NewQueue(syncProducer),
		notify.NewDispatcher(notificationProducer),
	)

	handler := rest.New(streamService, vldtr, jwtGenerator)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	rest.RegisterRoutes(router, handler)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
	}

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
