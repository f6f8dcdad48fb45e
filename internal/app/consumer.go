package app

import (
	"context"
	"fmt"

	"go-ems/internal/dashboard"
	"go-ems/internal/employee"
	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka/consumer"
	"go-ems/internal/shared/config"
	"go-ems/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer keeps the cached dashboard summary warm from employee lifecycle events.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	employeeRepo := employee.NewRepository(gormDB)
	dashboardService := dashboard.NewService(employeeRepo, rdb, cfg.DashboardCacheTTL, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	return runUntilSignal(logger,
		func(ctx context.Context) error {
			// warm the cached summary on start
			if _, err := dashboardService.Refresh(ctx); err != nil {
				logger.Warn("initial dashboard refresh failed", zap.Error(err))
			}
			return nil
		},
		func(ctx context.Context) error {
			consumer.ConsumeEmployeeLifecycle(ctx, reader, dashboardService, logger)
			return nil
		},
	)
}
