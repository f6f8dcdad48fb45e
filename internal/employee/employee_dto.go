package employee

// EmployeeRequest is the strict form of an employee payload. Nil fields are absent.
type EmployeeRequest struct {
	ID            *int64   `json:"id,omitempty"`
	FirstName     *string  `json:"firstName,omitempty"`
	LastName      *string  `json:"lastName,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Salary        *float64 `json:"salary,omitempty"`
	Department    *string  `json:"department,omitempty"`
	Role          *string  `json:"role,omitempty"`
	DateOfJoining *string  `json:"dateOfJoining,omitempty"`
	DateOfBirth   *string  `json:"dateOfBirth,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

type ListEmployeesQuery struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Size       int    `form:"size" binding:"omitempty,min=1,max=100"`
	SortBy     string `form:"sortBy"`
	SortDir    string `form:"sortDir" binding:"omitempty,oneof=asc desc"`
	Keyword    string `form:"keyword"`
	Status     string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Department string `form:"department"`
}

type EmployeeResponse struct {
	ID            int64   `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	Salary        float64 `json:"salary"`
	Department    string  `json:"department"`
	Role          string  `json:"role"`
	DateOfJoining *string `json:"dateOfJoining"`
	DateOfBirth   *string `json:"dateOfBirth"`
	Status        string  `json:"status"`
}

type EmployeePage struct {
	Employees []EmployeeResponse
	Total     int64
	Page      int
	Size      int
}
