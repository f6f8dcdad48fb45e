package employee

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter narrows and orders a page of employees. Zero values mean no filtering.
type ListFilter struct {
	Keyword    string
	Status     Status
	Department string
	SortBy     string
	SortDesc   bool
	Page       int
	Size       int
}

var sortColumns = map[string]string{
	"id":            "id",
	"firstName":     "first_name",
	"lastName":      "last_name",
	"email":         "email",
	"department":    "department",
	"role":          "role",
	"salary":        "salary",
	"dateOfJoining": "date_of_joining",
	"status":        "status",
}

// SortColumn maps an API sort key to its column; unknown keys fall back to id.
func SortColumn(sortBy string) string {
	if col, ok := sortColumns[sortBy]; ok {
		return col
	}
	return "id"
}

func NameScope(keyword string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			return db
		}
		like := "%" + strings.ToLower(keyword) + "%"
		return db.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like)
	}
}

func StatusScope(status Status) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("status = ?", status)
	}
}

func DepartmentScope(department string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		department = strings.TrimSpace(department)
		if department == "" {
			return db
		}
		return db.Where("LOWER(department) LIKE ?", "%"+strings.ToLower(department)+"%")
	}
}

func PageScope(f ListFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Name: SortColumn(f.SortBy)}, Desc: f.SortDesc}).
			Offset((f.Page - 1) * f.Size).
			Limit(f.Size)
	}
}
