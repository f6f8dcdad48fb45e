package employee_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	ListFn    func(ctx context.Context, q employee.ListEmployeesQuery) (employee.EmployeePage, error)
	GetAllFn  func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByIDFn func(ctx context.Context, id int64) (employee.EmployeeResponse, error)
	CreateFn  func(ctx context.Context, p employee.Payload) (employee.EmployeeResponse, error)
	UpdateFn  func(ctx context.Context, id int64, p employee.Payload) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id int64) error
	ExportFn  func(ctx context.Context, w io.Writer) error
}

func (f *fakeEmployeeService) List(ctx context.Context, q employee.ListEmployeesQuery) (employee.EmployeePage, error) {
	return f.ListFn(ctx, q)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Create(ctx context.Context, p employee.Payload) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, p)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id int64, p employee.Payload) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, p)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id int64) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeEmployeeService) Export(ctx context.Context, w io.Writer) error {
	return f.ExportFn(ctx, w)
}

func setupRouter(h *employee.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/api/v1/employees")
	g.GET("", h.List)
	g.GET("/all", h.GetAll)
	g.GET("/export", h.Export)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success with raw map", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, p employee.Payload) (employee.EmployeeResponse, error) {
				raw, ok := p.(employee.RawPayload)
				assert.True(t, ok)
				assert.Equal(t, "John", raw["firstName"])
				return employee.EmployeeResponse{ID: 1, FirstName: "John", Status: "ACTIVE"}, nil
			},
		}
		r := setupRouter(employee.NewHandler(svc))

		w := doRequest(r, http.MethodPost, "/api/v1/employees", `{"firstName":"John","salary":"12"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"firstName":"John"`)
	})

	t.Run("array body is rejected with received type", func(t *testing.T) {
		r := setupRouter(employee.NewHandler(&fakeEmployeeService{}))

		w := doRequest(r, http.MethodPost, "/api/v1/employees", `[1,2]`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid employee data format")
		assert.Contains(t, w.Body.String(), "received array")
	})

	t.Run("malformed json", func(t *testing.T) {
		r := setupRouter(employee.NewHandler(&fakeEmployeeService{}))

		w := doRequest(r, http.MethodPost, "/api/v1/employees", `{"firstName":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("unknown status -> 400", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, p employee.Payload) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrInvalidStatus
			},
		}
		r := setupRouter(employee.NewHandler(svc))

		w := doRequest(r, http.MethodPost, "/api/v1/employees", `{"status":"RETIRED"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid status value")
	})

	t.Run("unexpected error -> 500 without leaking", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, p employee.Payload) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("pq: connection refused")
			},
		}
		r := setupRouter(employee.NewHandler(svc))

		w := doRequest(r, http.MethodPost, "/api/v1/employees", `{}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestEmployeeHandler_List(t *testing.T) {
	t.Run("binds query and writes meta", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, q employee.ListEmployeesQuery) (employee.EmployeePage, error) {
				assert.Equal(t, 2, q.Page)
				assert.Equal(t, 5, q.Size)
				assert.Equal(t, "lastName", q.SortBy)
				assert.Equal(t, "ada", q.Keyword)
				return employee.EmployeePage{
					Employees: []employee.EmployeeResponse{{ID: 6}},
					Total:     11,
					Page:      2,
					Size:      5,
				}, nil
			},
		}
		r := setupRouter(employee.NewHandler(svc))

		w := doRequest(r, http.MethodGet, "/api/v1/employees?page=2&size=5&sortBy=lastName&keyword=ada", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalPages":3`)
		assert.Contains(t, w.Body.String(), `"total":11`)
	})

	t.Run("invalid sort direction", func(t *testing.T) {
		r := setupRouter(employee.NewHandler(&fakeEmployeeService{}))

		w := doRequest(r, http.MethodGet, "/api/v1/employees?sortDir=sideways", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("non-numeric id", func(t *testing.T) {
		r := setupRouter(employee.NewHandler(&fakeEmployeeService{}))

		w := doRequest(r, http.MethodGet, "/api/v1/employees/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid employee ID")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
				assert.Equal(t, int64(9), id)
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupRouter(employee.NewHandler(svc))

		w := doRequest(r, http.MethodGet, "/api/v1/employees/9", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("all is not treated as an id", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{{ID: 1}, {ID: 2}}, nil
			},
		}
		r := setupRouter(employee.NewHandler(svc))

		w := doRequest(r, http.MethodGet, "/api/v1/employees/all", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEmployeeHandler_UpdateAndDelete(t *testing.T) {
	svc := &fakeEmployeeService{
		UpdateFn: func(ctx context.Context, id int64, p employee.Payload) (employee.EmployeeResponse, error) {
			assert.Equal(t, int64(3), id)
			return employee.EmployeeResponse{ID: id, Role: "Lead"}, nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			if id == 4 {
				return employeeerrors.ErrEmployeeNotFound
			}
			return nil
		},
	}
	r := setupRouter(employee.NewHandler(svc))

	w := doRequest(r, http.MethodPut, "/api/v1/employees/3", `{"role":"Lead"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"Lead"`)

	w = doRequest(r, http.MethodDelete, "/api/v1/employees/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)

	w = doRequest(r, http.MethodDelete, "/api/v1/employees/4", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeHandler_Export(t *testing.T) {
	t.Run("csv attachment", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ExportFn: func(ctx context.Context, w io.Writer) error {
				_, err := io.WriteString(w, "id,firstName\n1,Ada\n")
				return err
			},
		}
		r := setupRouter(employee.NewHandler(svc))

		w := doRequest(r, http.MethodGet, "/api/v1/employees/export", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "employees.csv")
		assert.Equal(t, "id,firstName\n1,Ada\n", w.Body.String())
	})

	t.Run("failure is json", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ExportFn: func(ctx context.Context, w io.Writer) error { return errors.New("db down") },
		}
		r := setupRouter(employee.NewHandler(svc))

		w := doRequest(r, http.MethodGet, "/api/v1/employees/export", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
	})
}
