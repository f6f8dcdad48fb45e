package employee

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{
	"id", "firstName", "lastName", "email", "department", "role", "salary", "dateOfJoining", "status",
}

// WriteCSV writes one header row then one row per employee. A missing join date is an empty cell.
func WriteCSV(w io.Writer, empls []Employee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, e := range empls {
		joined := ""
		if e.DateOfJoining != nil {
			joined = e.DateOfJoining.Format(DateLayout)
		}
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.FirstName,
			e.LastName,
			e.Email,
			e.Department,
			e.Role,
			strconv.FormatFloat(e.Salary, 'f', -1, 64),
			joined,
			string(e.Status),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
