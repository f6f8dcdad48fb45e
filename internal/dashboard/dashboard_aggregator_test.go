package dashboard_test

import (
	"fmt"
	"testing"
	"time"

	"go-ems/internal/dashboard"
	"go-ems/internal/employee"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func active(first, dept string) employee.Employee {
	return employee.Employee{
		FirstName:  first,
		LastName:   "Test",
		Email:      first + "@example.com",
		Department: dept,
		Role:       "Staff",
		Status:     employee.StatusActive,
	}
}

func TestSummarize_DepartmentStats(t *testing.T) {
	t.Run("seven and three of ten", func(t *testing.T) {
		var emps []employee.Employee
		for i := 0; i < 3; i++ {
			emps = append(emps, active(fmt.Sprintf("s%d", i), "Sales"))
		}
		for i := 0; i < 7; i++ {
			emps = append(emps, active(fmt.Sprintf("e%d", i), "Engineering"))
		}

		s := dashboard.Summarize(emps, today)

		assert.Equal(t, int64(10), s.TotalEmployees)
		assert.Equal(t, []dashboard.DepartmentStat{
			{DepartmentName: "Engineering", EmployeeCount: 7, Percentage: 70},
			{DepartmentName: "Sales", EmployeeCount: 3, Percentage: 30},
		}, s.DepartmentStats)
	})

	t.Run("thirds round to two decimals and sum near 100", func(t *testing.T) {
		s := dashboard.Summarize([]employee.Employee{
			active("a", "A"), active("b", "B"), active("c", "C"),
		}, today)

		var sum float64
		for _, d := range s.DepartmentStats {
			assert.Equal(t, 33.33, d.Percentage)
			sum += d.Percentage
		}
		assert.InDelta(t, 100, sum, 0.1)
		assert.Equal(t, "A", s.DepartmentStats[0].DepartmentName)
	})

	t.Run("empty department is skipped", func(t *testing.T) {
		s := dashboard.Summarize([]employee.Employee{active("a", ""), active("b", "Ops")}, today)

		assert.Equal(t, int64(2), s.TotalEmployees)
		assert.Equal(t, []dashboard.DepartmentStat{
			{DepartmentName: "Ops", EmployeeCount: 1, Percentage: 100},
		}, s.DepartmentStats)
	})

	t.Run("no employees", func(t *testing.T) {
		s := dashboard.Summarize(nil, today)

		assert.Equal(t, int64(0), s.TotalEmployees)
		assert.Empty(t, s.DepartmentStats)
		assert.NotNil(t, s.RecentHires)
		assert.NotNil(t, s.UpcomingBirthdays)
		assert.NotNil(t, s.UpcomingAnniversaries)
	})
}

func TestSummarize_OnlyActive(t *testing.T) {
	inactive := active("x", "Engineering")
	inactive.Status = employee.StatusInactive
	inactive.DateOfJoining = day(2024, time.June, 1)
	inactive.DateOfBirth = day(1990, time.June, 20)

	s := dashboard.Summarize([]employee.Employee{inactive, active("y", "Sales")}, today)

	assert.Equal(t, int64(1), s.TotalEmployees)
	assert.Equal(t, int64(0), s.NewHiresThisMonth)
	assert.Len(t, s.DepartmentStats, 1)
	assert.Empty(t, s.RecentHires)
	assert.Empty(t, s.UpcomingBirthdays)
}

func TestSummarize_NewHiresThisMonth(t *testing.T) {
	thisMonth := active("a", "Eng")
	thisMonth.DateOfJoining = day(2024, time.June, 3)
	lastMonth := active("b", "Eng")
	lastMonth.DateOfJoining = day(2024, time.May, 30)
	lastYear := active("c", "Eng")
	lastYear.DateOfJoining = day(2023, time.June, 10)
	noDate := active("d", "Eng")

	s := dashboard.Summarize([]employee.Employee{thisMonth, lastMonth, lastYear, noDate}, today)

	assert.Equal(t, int64(1), s.NewHiresThisMonth)
}

func TestSummarize_RecentHires(t *testing.T) {
	var emps []employee.Employee
	for i := 1; i <= 7; i++ {
		e := active(fmt.Sprintf("h%d", i), "Eng")
		e.ID = int64(i)
		e.DateOfJoining = day(2024, time.January, i)
		emps = append(emps, e)
	}
	emps = append(emps, active("nodate", "Eng"))

	s := dashboard.Summarize(emps, today)

	assert.Len(t, s.RecentHires, 5)
	assert.Equal(t, int64(7), s.RecentHires[0].ID)
	assert.Equal(t, "Jan 07, 2024", s.RecentHires[0].FormattedHireDate)
	assert.Equal(t, int64(3), s.RecentHires[4].ID)
}

func TestSummarize_UpcomingBirthdays(t *testing.T) {
	t.Run("ten days sorts ahead of twenty", func(t *testing.T) {
		in20 := active("twenty", "Sales")
		in20.DateOfBirth = day(1985, time.July, 5)
		in10 := active("ten", "Eng")
		in10.DateOfBirth = day(1990, time.June, 25)

		s := dashboard.Summarize([]employee.Employee{in20, in10}, today)

		assert.Equal(t, []dashboard.UpcomingEvent{
			{EmployeeName: "ten Test", EventType: "birthday", Date: "Jun 25", DaysUntil: 10, Department: "Eng"},
			{EmployeeName: "twenty Test", EventType: "birthday", Date: "Jul 05", DaysUntil: 20, Department: "Sales"},
		}, s.UpcomingBirthdays)
	})

	t.Run("birthday today is a year away and outside the window", func(t *testing.T) {
		e := active("today", "Eng")
		e.DateOfBirth = day(1990, time.June, 15)

		s := dashboard.Summarize([]employee.Employee{e}, today)

		assert.Empty(t, s.UpcomingBirthdays)
		next := dashboard.NextOccurrence(*e.DateOfBirth, today)
		assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), next)
		assert.Equal(t, 365, dashboard.DaysUntil(today, next))
	})

	t.Run("window is inclusive of thirty days", func(t *testing.T) {
		in30 := active("thirty", "Eng")
		in30.DateOfBirth = day(1990, time.July, 15)
		in31 := active("thirtyone", "Eng")
		in31.DateOfBirth = day(1990, time.July, 16)

		s := dashboard.Summarize([]employee.Employee{in30, in31}, today)

		assert.Len(t, s.UpcomingBirthdays, 1)
		assert.Equal(t, 30, s.UpcomingBirthdays[0].DaysUntil)
	})

	t.Run("whole day difference across months", func(t *testing.T) {
		e := active("later", "Eng")
		e.DateOfBirth = day(1990, time.July, 17)

		s := dashboard.Summarize([]employee.Employee{e}, today)

		assert.Empty(t, s.UpcomingBirthdays)
	})

	t.Run("at most five", func(t *testing.T) {
		var emps []employee.Employee
		for i := 0; i < 8; i++ {
			e := active(fmt.Sprintf("b%d", i), "Eng")
			e.DateOfBirth = day(1990, time.June, 16+i)
			emps = append(emps, e)
		}

		s := dashboard.Summarize(emps, today)

		assert.Len(t, s.UpcomingBirthdays, 5)
		for i, ev := range s.UpcomingBirthdays {
			assert.Equal(t, i+1, ev.DaysUntil)
			assert.GreaterOrEqual(t, ev.DaysUntil, 0)
			assert.LessOrEqual(t, ev.DaysUntil, 30)
		}
	})
}

func TestSummarize_UpcomingAnniversaries(t *testing.T) {
	e := active("anna", "HR")
	e.DateOfJoining = day(2020, time.June, 20)
	wrapped := active("newyear", "HR")
	wrapped.DateOfJoining = day(2019, time.January, 2)

	s := dashboard.Summarize([]employee.Employee{wrapped, e}, today)

	assert.Equal(t, []dashboard.UpcomingEvent{
		{EmployeeName: "anna Test", EventType: "anniversary", Date: "Jun 20", DaysUntil: 5, Department: "HR"},
	}, s.UpcomingAnniversaries)
}

func TestNextOccurrence(t *testing.T) {
	t.Run("leap day clamps in common years", func(t *testing.T) {
		next := dashboard.NextOccurrence(time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), next)
	})

	t.Run("passed date rolls to next year", func(t *testing.T) {
		next := dashboard.NextOccurrence(time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), today)

		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), next)
	})

	t.Run("year end wrap", func(t *testing.T) {
		dec := time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)
		next := dashboard.NextOccurrence(time.Date(1990, time.January, 5, 0, 0, 0, 0, time.UTC), dec)

		assert.Equal(t, 16, dashboard.DaysUntil(dec, next))
	})
}

func TestHeadcount(t *testing.T) {
	a := active("a", "Eng")
	a.Salary = 100
	b := active("b", "Eng")
	b.Salary = 300
	b.Status = employee.StatusInactive
	c := active("c", "Sales")
	c.Salary = 200

	r := dashboard.Headcount([]employee.Employee{a, b, c})

	assert.Equal(t, int64(3), r.TotalEmployees)
	assert.Equal(t, 200.0, r.AverageSalary)
	assert.Equal(t, map[string]int64{"Eng": 2, "Sales": 1}, r.PerDepartment)

	empty := dashboard.Headcount(nil)
	assert.Equal(t, 0.0, empty.AverageSalary)
	assert.Empty(t, empty.PerDepartment)
}
