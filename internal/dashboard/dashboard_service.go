package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-ems/internal/employee"
	"go-ems/internal/shared/cachekey"
	"go-ems/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type EmployeeSource interface {
	FindAll(ctx context.Context) ([]employee.Employee, error)
}

type Service interface {
	Stats(ctx context.Context) (Summary, error)
	Headcount(ctx context.Context) (HeadcountReport, error)
	Refresh(ctx context.Context) (Summary, error)
}

type Option func(*service)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	source EmployeeSource
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(source EmployeeSource, rdb *redis.Client, ttl time.Duration, logger *zap.Logger, opts ...Option) Service {
	if logger == nil {
		logger = zap.L()
	}
	s := &service{
		source: source,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		now:    time.Now,
		logger: logger.Named("dashboard.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Stats(ctx context.Context) (Summary, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cachekey.DashboardStats).Result()
		switch {
		case err == nil:
			var summary Summary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				log.Debug("dashboard stats cache hit")
				return summary, nil
			}
			log.Warn("dashboard stats cache entry unreadable")
		case !errors.Is(err, redis.Nil):
			log.Warn("dashboard stats cache read failed", zap.Error(err))
		}
	}

	v, err, shared := s.sf.Do(cachekey.DashboardStats, func() (interface{}, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return Summary{}, err
	}
	log.Debug("dashboard stats computed", zap.Bool("shared", shared))

	return v.(Summary), nil
}

func (s *service) Refresh(ctx context.Context) (Summary, error) {
	summary, err := s.compute(ctx)
	if err != nil {
		return Summary{}, err
	}
	s.logger.Info("dashboard stats refreshed", zap.Int64("total_employees", summary.TotalEmployees))
	return summary, nil
}

func (s *service) Headcount(ctx context.Context) (HeadcountReport, error) {
	empls, err := s.source.FindAll(ctx)
	if err != nil {
		s.logger.Error("headcount load employees failed", zap.Error(err))
		return HeadcountReport{}, err
	}
	return Headcount(empls), nil
}

// compute loads every employee, summarizes and stores the result in the cache.
func (s *service) compute(ctx context.Context) (Summary, error) {
	empls, err := s.source.FindAll(ctx)
	if err != nil {
		s.logger.Error("dashboard load employees failed", zap.Error(err))
		return Summary{}, err
	}

	now := s.now()
	summary := Summarize(empls, now)

	if s.rdb != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.rdb.Set(ctx, cachekey.DashboardStats, data, CacheTTL(now, s.ttl)).Err(); err != nil {
				s.logger.Warn("dashboard stats cache write failed", zap.Error(err))
			}
		}
	}

	return summary, nil
}

// CacheTTL caps ttl at the time left until the next local midnight, when daysUntil and
// newHiresThisMonth change. A non-positive ttl means "until midnight".
func CacheTTL(now time.Time, ttl time.Duration) time.Duration {
	y, m, d := now.Date()
	untilMidnight := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location()).Sub(now)
	if ttl <= 0 || ttl > untilMidnight {
		return untilMidnight
	}
	return ttl
}
