package consumer

import (
	"context"
	"encoding/json"

	"go-ems/internal/dashboard"
	"go-ems/internal/events"
	"go-ems/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type DashboardRefresher interface {
	Refresh(ctx context.Context) (dashboard.Summary, error)
}

// ConsumeEmployeeLifecycle recomputes the cached dashboard for every employee lifecycle event.
// A failed refresh is not committed, but the reader does not fetch it again: the next event's
// refresh recomputes the whole summary and its commit moves the offset past the failed one.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	refresher DashboardRefresher,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if err := HandleEmployeeLifecycle(ctx, msg, refresher, log); err != nil {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// HandleEmployeeLifecycle returns an error only when the dashboard refresh failed.
// Undecodable payloads and unknown event types are logged and acknowledged.
func HandleEmployeeLifecycle(
	ctx context.Context,
	msg kafkago.Message,
	refresher DashboardRefresher,
	log *zap.Logger,
) error {
	var event events.EmployeeLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee lifecycle event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return nil
	}

	switch event.EventType {
	case events.EmployeeCreated, events.EmployeeUpdated, events.EmployeeDeleted:
	default:
		log.Warn("unknown employee lifecycle event, skipping", zap.String("event_type", event.EventType))
		return nil
	}

	ctx = contextutil.WithRequestID(ctx, event.RequestID)
	summary, err := refresher.Refresh(ctx)
	if err != nil {
		log.Error("refresh dashboard failed",
			zap.String("request_id", event.RequestID),
			zap.String("event_type", event.EventType),
			zap.Int64("employee_id", event.EmployeeID),
			zap.Error(err),
		)
		return err
	}

	log.Info("dashboard refreshed from employee lifecycle event",
		zap.String("request_id", event.RequestID),
		zap.String("event_type", event.EventType),
		zap.Int64("employee_id", event.EmployeeID),
		zap.Int64("total_employees", summary.TotalEmployees),
	)
	return nil
}
