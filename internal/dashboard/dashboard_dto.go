package dashboard

type DepartmentStat struct {
	DepartmentName string  `json:"departmentName"`
	EmployeeCount  int64   `json:"employeeCount"`
	Percentage     float64 `json:"percentage"`
}

type RecentHire struct {
	ID                int64  `json:"id"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Department        string `json:"department"`
	Role              string `json:"role"`
	FormattedHireDate string `json:"formattedHireDate"`
}

type UpcomingEvent struct {
	EmployeeName string `json:"employeeName"`
	EventType    string `json:"eventType"`
	Date         string `json:"date"`
	DaysUntil    int    `json:"daysUntil"`
	Department   string `json:"department"`
}

// Summary is derived on demand and never persisted.
type Summary struct {
	TotalEmployees        int64            `json:"totalEmployees"`
	NewHiresThisMonth     int64            `json:"newHiresThisMonth"`
	DepartmentStats       []DepartmentStat `json:"departmentStats"`
	RecentHires           []RecentHire     `json:"recentHires"`
	UpcomingAnniversaries []UpcomingEvent  `json:"upcomingAnniversaries"`
	UpcomingBirthdays     []UpcomingEvent  `json:"upcomingBirthdays"`
}

// HeadcountReport covers every record regardless of status.
type HeadcountReport struct {
	PerDepartment  map[string]int64 `json:"perDepartment"`
	AverageSalary  float64          `json:"averageSalary"`
	TotalEmployees int64            `json:"totalEmployees"`
}
