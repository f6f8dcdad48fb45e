package dashboard

import (
	"math"
	"sort"
	"time"

	"go-ems/internal/employee"
)

const (
	EventAnniversary = "anniversary"
	EventBirthday    = "birthday"

	hireDateLayout  = "Jan 02, 2006"
	eventDateLayout = "Jan 02"

	listLimit   = 5
	eventWindow = 30
)

// Summarize builds the dashboard from the ACTIVE subset of employees as seen on today's civil date.
func Summarize(employees []employee.Employee, today time.Time) Summary {
	today = civil(today)

	active := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if e.IsActive() {
			active = append(active, e)
		}
	}

	return Summary{
		TotalEmployees:        int64(len(active)),
		NewHiresThisMonth:     newHiresThisMonth(active, today),
		DepartmentStats:       departmentStats(active),
		RecentHires:           recentHires(active),
		UpcomingAnniversaries: upcomingEvents(active, today, EventAnniversary),
		UpcomingBirthdays:     upcomingEvents(active, today, EventBirthday),
	}
}

// Headcount reports department counts, average salary and total over every record.
func Headcount(employees []employee.Employee) HeadcountReport {
	report := HeadcountReport{
		PerDepartment:  make(map[string]int64),
		TotalEmployees: int64(len(employees)),
	}
	if len(employees) == 0 {
		return report
	}

	var sum float64
	for _, e := range employees {
		report.PerDepartment[e.Department]++
		sum += e.Salary
	}
	report.AverageSalary = sum / float64(len(employees))
	return report
}

func newHiresThisMonth(active []employee.Employee, today time.Time) int64 {
	var n int64
	for _, e := range active {
		if e.DateOfJoining == nil {
			continue
		}
		if e.DateOfJoining.Year() == today.Year() && e.DateOfJoining.Month() == today.Month() {
			n++
		}
	}
	return n
}

// departmentStats divides by the number of grouped employees, so records without a department
// do not dilute the percentages.
func departmentStats(active []employee.Employee) []DepartmentStat {
	counts := make(map[string]int64)
	var total int64
	for _, e := range active {
		if e.Department == "" {
			continue
		}
		counts[e.Department]++
		total++
	}

	stats := make([]DepartmentStat, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, DepartmentStat{
			DepartmentName: name,
			EmployeeCount:  count,
			Percentage:     percentage(count, total),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].EmployeeCount != stats[j].EmployeeCount {
			return stats[i].EmployeeCount > stats[j].EmployeeCount
		}
		return stats[i].DepartmentName < stats[j].DepartmentName
	})
	return stats
}

func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)*100/float64(total)*100) / 100
}

func recentHires(active []employee.Employee) []RecentHire {
	hired := make([]employee.Employee, 0, len(active))
	for _, e := range active {
		if e.DateOfJoining != nil {
			hired = append(hired, e)
		}
	}

	sort.SliceStable(hired, func(i, j int) bool {
		return hired[i].DateOfJoining.After(*hired[j].DateOfJoining)
	})
	if len(hired) > listLimit {
		hired = hired[:listLimit]
	}

	out := make([]RecentHire, 0, len(hired))
	for _, e := range hired {
		out = append(out, RecentHire{
			ID:                e.ID,
			FirstName:         e.FirstName,
			LastName:          e.LastName,
			Email:             e.Email,
			Department:        e.Department,
			Role:              e.Role,
			FormattedHireDate: e.DateOfJoining.Format(hireDateLayout),
		})
	}
	return out
}

func upcomingEvents(active []employee.Employee, today time.Time, eventType string) []UpcomingEvent {
	events := make([]UpcomingEvent, 0)
	for _, e := range active {
		d := e.DateOfJoining
		if eventType == EventBirthday {
			d = e.DateOfBirth
		}
		if d == nil {
			continue
		}

		next := NextOccurrence(*d, today)
		days := DaysUntil(today, next)
		if days < 0 || days > eventWindow {
			continue
		}

		events = append(events, UpcomingEvent{
			EmployeeName: e.FullName(),
			EventType:    eventType,
			Date:         next.Format(eventDateLayout),
			DaysUntil:    days,
			Department:   e.Department,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].DaysUntil < events[j].DaysUntil
	})
	if len(events) > listLimit {
		events = events[:listLimit]
	}
	return events
}

// NextOccurrence moves d into today's year, or the following year when that lands on or before today.
// An occurrence falling on today is therefore a year away.
func NextOccurrence(d, today time.Time) time.Time {
	today = civil(today)
	next := withYear(d, today.Year())
	if !next.After(today) {
		next = withYear(d, today.Year()+1)
	}
	return next
}

// DaysUntil counts whole days between two civil dates.
func DaysUntil(from, to time.Time) int {
	return int(civil(to).Sub(civil(from)).Hours() / 24)
}

// withYear keeps month and day, clamping Feb 29 to Feb 28 in common years.
func withYear(d time.Time, year int) time.Time {
	month, day := d.Month(), d.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
