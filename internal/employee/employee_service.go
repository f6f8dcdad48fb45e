package employee

import (
	"context"
	"encoding/json"
	"io"
	"strconv"
	"time"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/shared/cachekey"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultPage = 1
	defaultSize = 10
)

type Service interface {
	List(ctx context.Context, q ListEmployeesQuery) (EmployeePage, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Create(ctx context.Context, p Payload) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, p Payload) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
	Export(ctx context.Context, w io.Writer) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		logger: l,
	}
}

func (s *service) List(ctx context.Context, q ListEmployeesQuery) (EmployeePage, error) {
	filter := ListFilter{
		Keyword:    q.Keyword,
		Department: q.Department,
		SortBy:     q.SortBy,
		SortDesc:   q.SortDir == "desc",
		Page:       q.Page,
		Size:       q.Size,
	}
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Size < 1 {
		filter.Size = defaultSize
	}
	if q.Status != "" {
		status, ok := ParseStatus(q.Status)
		if !ok {
			return EmployeePage{}, employeeerrors.ErrInvalidStatus
		}
		filter.Status = status
	}

	s.logger.Debug("list employees requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("page", filter.Page),
		zap.Int("size", filter.Size),
		zap.String("sort_by", SortColumn(filter.SortBy)),
		zap.String("keyword", filter.Keyword),
	)

	empls, total, err := s.repo.FindPage(ctx, filter)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return EmployeePage{}, mapRepositoryError(err)
	}

	return EmployeePage{
		Employees: mapToListResponse(empls),
		Total:     total,
		Page:      filter.Page,
		Size:      filter.Size,
	}, nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("request_id", contextutil.GetRequestID(ctx)))
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, p Payload) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	patch, err := Normalize(ctx, p)
	if err != nil {
		s.logger.Warn("create employee payload rejected", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := patch.NewEmployee()
	if err := Validate(empl); err != nil {
		s.logger.Warn("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", empl.Email),
		zap.String("department", empl.Department),
	)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, &empl); err != nil {
			s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}
		return s.enqueue(ctx, tx, events.EmployeeCreated, empl)
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateDashboard(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)

	return mapToResponse(empl), nil
}

func (s *service) Update(ctx context.Context, id int64, p Payload) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	patch, err := Normalize(ctx, p)
	if err != nil {
		s.logger.Warn("update employee payload rejected", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	var updated Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		current, err := qtx.FindByID(ctx, id)
		if err != nil {
			s.logger.Warn("update employee fetch existing failed", zap.Int64("employee_id", id), zap.Error(err))
			return mapRepositoryError(err)
		}

		updated = patch.Apply(*current)
		if err := Validate(updated); err != nil {
			return err
		}

		if err := qtx.Update(ctx, &updated); err != nil {
			s.logger.Error("update employee persist failed", zap.Int64("employee_id", id), zap.Error(err))
			return mapRepositoryError(err)
		}
		return s.enqueue(ctx, tx, events.EmployeeUpdated, updated)
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateDashboard(ctx)
	s.logger.Info("update employee success", zap.String("request_id", rid), zap.Int64("employee_id", id))

	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
			s.logger.Warn("delete employee failed", zap.Int64("employee_id", id), zap.Error(err))
			return mapRepositoryError(err)
		}
		return s.enqueue(ctx, tx, events.EmployeeDeleted, Employee{ID: id})
	})
	if err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	s.logger.Info("delete employee success", zap.String("request_id", rid), zap.Int64("employee_id", id))
	return nil
}

func (s *service) Export(ctx context.Context, w io.Writer) error {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("export employees failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := WriteCSV(w, empls); err != nil {
		s.logger.Error("export employees write failed", zap.Error(err))
		return err
	}
	s.logger.Info("export employees success", zap.Int("rows", len(empls)))
	return nil
}

// enqueue stores a lifecycle event in the outbox using the caller's transaction.
func (s *service) enqueue(ctx context.Context, tx *gorm.DB, eventType string, empl Employee) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		EmployeeID: empl.ID,
		Department: empl.Department,
		Status:     string(empl.Status),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	aggregateID := strconv.FormatInt(empl.ID, 10)
	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("employee outbox persist failed",
			zap.String("event_type", eventType),
			zap.String("employee_id", aggregateID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) invalidateDashboard(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cachekey.DashboardStats).Err(); err != nil {
		s.logger.Error("failed to invalidate dashboard cache",
			zap.Error(err),
			zap.String("key", cachekey.DashboardStats),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            empl.ID,
		FirstName:     empl.FirstName,
		LastName:      empl.LastName,
		Email:         empl.Email,
		Salary:        empl.Salary,
		Department:    empl.Department,
		Role:          empl.Role,
		DateOfJoining: formatDate(empl.DateOfJoining),
		DateOfBirth:   formatDate(empl.DateOfBirth),
		Status:        string(empl.Status),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, 0, len(empls))
	for _, e := range empls {
		res = append(res, mapToResponse(e))
	}
	return res
}

func formatDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(DateLayout)
	return &s
}
