package employee

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/contextutil"

	"go.uber.org/zap"
)

const DateLayout = "2006-01-02"

// Payload is an employee body in one of the accepted shapes: RawPayload or EmployeeRequest.
type Payload interface {
	patch(log *zap.Logger) (Patch, error)
}

// RawPayload is a loosely typed JSON object as decoded by encoding/json.
type RawPayload map[string]any

// Patch is a normalized payload. Nil fields were absent or unusable and must not overwrite stored values.
type Patch struct {
	ID            *int64
	FirstName     *string
	LastName      *string
	Email         *string
	Salary        *float64
	Department    *string
	Role          *string
	DateOfJoining *time.Time
	DateOfBirth   *time.Time
	Status        *Status
}

// ResolvePayload picks the payload variant for a decoded request body.
func ResolvePayload(body any) (Payload, error) {
	switch v := body.(type) {
	case map[string]any:
		return RawPayload(v), nil
	case RawPayload:
		return v, nil
	case EmployeeRequest:
		return v, nil
	case *EmployeeRequest:
		if v == nil {
			return nil, employeeerrors.InvalidPayload("null")
		}
		return *v, nil
	default:
		return nil, employeeerrors.InvalidPayload(jsonTypeName(body))
	}
}

// Normalize converts a payload into a Patch. Malformed dates and salaries never fail the call;
// only an unknown status or a missing payload does.
func Normalize(ctx context.Context, p Payload) (Patch, error) {
	if p == nil {
		return Patch{}, employeeerrors.InvalidPayload("null")
	}
	log := contextutil.GetLogger(ctx, zap.L()).Named("employee.normalizer")
	return p.patch(log)
}

func (p RawPayload) patch(log *zap.Logger) (Patch, error) {
	var out Patch

	if v, ok := p["id"]; ok {
		out.ID = parseID(v)
		log.Debug("normalize id", zap.Any("raw", v), zap.Bool("parsed", out.ID != nil))
	}

	out.FirstName = textField(p, "firstName", log)
	out.LastName = textField(p, "lastName", log)
	out.Email = textField(p, "email", log)
	out.Department = textField(p, "department", log)
	out.Role = textField(p, "role", log)

	if v, ok := p["salary"]; ok {
		out.Salary = parseSalary(v, log)
	}

	if v, ok := p["dateOfJoining"]; ok {
		out.DateOfJoining = parseDate("dateOfJoining", v, log)
	}
	if v, ok := p["dateOfBirth"]; ok {
		out.DateOfBirth = parseDate("dateOfBirth", v, log)
	}

	if v, ok := p["status"]; ok && v != nil {
		s, isText := v.(string)
		if !isText {
			log.Debug("normalize status rejected", zap.Any("raw", v))
			return Patch{}, employeeerrors.ErrInvalidStatus
		}
		status, err := parseStatus(s, log)
		if err != nil {
			return Patch{}, err
		}
		out.Status = status
	}

	return out, nil
}

func (r EmployeeRequest) patch(log *zap.Logger) (Patch, error) {
	out := Patch{
		ID:         cloneInt(r.ID),
		FirstName:  cloneString(r.FirstName),
		LastName:   cloneString(r.LastName),
		Email:      cloneString(r.Email),
		Department: cloneString(r.Department),
		Role:       cloneString(r.Role),
	}

	if r.Salary != nil {
		out.Salary = parseSalary(*r.Salary, log)
	}
	if r.DateOfJoining != nil {
		out.DateOfJoining = parseDate("dateOfJoining", *r.DateOfJoining, log)
	}
	if r.DateOfBirth != nil {
		out.DateOfBirth = parseDate("dateOfBirth", *r.DateOfBirth, log)
	}
	if r.Status != nil {
		status, err := parseStatus(*r.Status, log)
		if err != nil {
			return Patch{}, err
		}
		out.Status = status
	}

	return out, nil
}

// Request renders the patch back into its strict form.
func (p Patch) Request() EmployeeRequest {
	req := EmployeeRequest{
		ID:         cloneInt(p.ID),
		FirstName:  cloneString(p.FirstName),
		LastName:   cloneString(p.LastName),
		Email:      cloneString(p.Email),
		Department: cloneString(p.Department),
		Role:       cloneString(p.Role),
	}
	if p.Salary != nil {
		s := *p.Salary
		req.Salary = &s
	}
	if p.DateOfJoining != nil {
		d := p.DateOfJoining.Format(DateLayout)
		req.DateOfJoining = &d
	}
	if p.DateOfBirth != nil {
		d := p.DateOfBirth.Format(DateLayout)
		req.DateOfBirth = &d
	}
	if p.Status != nil {
		s := string(*p.Status)
		req.Status = &s
	}
	return req
}

// Apply returns a copy of e with every present field of the patch written over it. ID is never touched.
func (p Patch) Apply(e Employee) Employee {
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.DateOfJoining != nil {
		d := *p.DateOfJoining
		e.DateOfJoining = &d
	}
	if p.DateOfBirth != nil {
		d := *p.DateOfBirth
		e.DateOfBirth = &d
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	return e
}

// NewEmployee builds a record for insertion: salary defaults to 0 and status to ACTIVE.
func (p Patch) NewEmployee() Employee {
	return p.Apply(Employee{Salary: 0, Status: StatusActive})
}

func textField(p RawPayload, key string, log *zap.Logger) *string {
	v, ok := p[key]
	if !ok || v == nil {
		return nil
	}
	s, isText := v.(string)
	if !isText {
		log.Debug("normalize text field ignored", zap.String("field", key), zap.Any("raw", v))
		return nil
	}
	return &s
}

func parseID(v any) *int64 {
	var id int64
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return nil
		}
		id = int64(n)
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return nil
		}
		id = parsed
	case int:
		id = int64(n)
	case int64:
		id = n
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return nil
		}
		id = parsed
	default:
		return nil
	}
	return &id
}

func parseSalary(v any, log *zap.Logger) *float64 {
	var salary float64
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		salary = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			log.Debug("normalize salary unparsable, using 0", zap.String("raw", n.String()))
			parsed = 0
		}
		salary = parsed
	case int:
		salary = float64(n)
	case int64:
		salary = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			log.Debug("normalize salary unparsable, using 0", zap.String("raw", n))
			parsed = 0
		}
		salary = parsed
	default:
		log.Debug("normalize salary ignored", zap.Any("raw", v))
		return nil
	}

	if math.IsNaN(salary) || math.IsInf(salary, 0) {
		salary = 0
	}
	return &salary
}

func parseDate(field string, v any, log *zap.Logger) *time.Time {
	s, ok := v.(string)
	if !ok {
		if v != nil {
			log.Debug("normalize date dropped", zap.String("field", field), zap.Any("raw", v))
		}
		return nil
	}
	if s == "" {
		return nil
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		log.Debug("normalize date dropped", zap.String("field", field), zap.String("raw", s), zap.Error(err))
		return nil
	}
	return &d
}

// parseStatus treats an empty string as absent.
func parseStatus(v string, log *zap.Logger) (*Status, error) {
	if v == "" {
		return nil, nil
	}
	status, ok := ParseStatus(v)
	if !ok {
		log.Debug("normalize status rejected", zap.String("raw", v))
		return nil, employeeerrors.ErrInvalidStatus
	}
	return &status, nil
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return "unsupported type"
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int64) *int64 {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
