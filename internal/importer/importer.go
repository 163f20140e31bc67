// Package importer parses and validates bulk employee CSV/XLSX uploads:
// heuristic header mapping, per-row field validation with accumulated
// error/warning lists, and duplicate-email detection within the file and
// against the organization's existing employees.
package importer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"

	"github.com/xuri/excelize/v2"
)

// RowStatus is the outcome of validating one file row.
type RowStatus string

const (
	RowStatusOK        RowStatus = "ok"
	RowStatusInvalid   RowStatus = "invalid"
	RowStatusDuplicate RowStatus = "duplicate"
)

// ParsedEmployee carries the canonical fields extracted from one row.
type ParsedEmployee struct {
	FirstName  string              `json:"first_name"`
	LastName   string              `json:"last_name"`
	FullName   string              `json:"full_name"`
	Email      string              `json:"email"`
	Department string              `json:"department"`
	Role       models.EmployeeRole `json:"role"`
	Skills     []string            `json:"skills"`
	Phone      string              `json:"phone"`
}

// RowResult is the per-row validation outcome. Row numbers are 1-based file
// positions including the header, matching what a user sees in a spreadsheet.
type RowResult struct {
	Row      int            `json:"row"`
	Employee ParsedEmployee `json:"employee"`
	Status   RowStatus      `json:"status"`
	Errors   []string       `json:"errors,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
}

// Summary aggregates row outcomes.
type Summary struct {
	Total      int `json:"total"`
	Importable int `json:"importable"`
	Invalid    int `json:"invalid"`
	Duplicates int `json:"duplicates"`
}

// Result is the full outcome of an import preview.
type Result struct {
	Rows           []RowResult `json:"rows"`
	Summary        Summary     `json:"summary"`
	UnknownColumns []string    `json:"unknown_columns,omitempty"`
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// maxRows bounds a single upload; imports are synchronous request-scoped work.
const maxRows = 5000

// Parse decodes a CSV or XLSX upload into a header row plus data rows.
// The format is picked from the file name extension.
func Parse(r io.Reader, fileName string) (headers []string, rows [][]string, err error) {
	switch ext := strings.ToLower(strings.TrimPrefix(fileExt(fileName), ".")); ext {
	case "csv":
		return parseCSV(r)
	case "xlsx", "xls":
		return parseXLSX(r)
	default:
		return nil, nil, fmt.Errorf("%w: .%s", apperrors.ErrUnsupportedImportFormat, ext)
	}
}

func fileExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

func parseCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are validated per-row, not rejected wholesale
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("file has no rows")
	}
	if len(all) > maxRows+1 {
		return nil, nil, fmt.Errorf("file has too many rows (max %d)", maxRows)
	}
	return all[0], all[1:], nil
}

func parseXLSX(r io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parse xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("file has no rows")
	}
	if len(all) > maxRows+1 {
		return nil, nil, fmt.Errorf("file has too many rows (max %d)", maxRows)
	}
	return all[0], all[1:], nil
}

// Validate maps headers, validates every data row and flags duplicates.
// existingEmails is the pre-fetched set of the organization's current
// employee emails, lowercased.
func Validate(headers []string, rows [][]string, existingEmails map[string]bool) *Result {
	mapping, unknown := MapHeaders(headers)
	result := &Result{UnknownColumns: unknown}
	seenInFile := make(map[string]int, len(rows)) // email -> first row number

	for i, cells := range rows {
		rowNum := i + 2 // 1-based plus header row
		if blankRow(cells) {
			continue
		}

		rr := validateRow(rowNum, cells, mapping)

		email := strings.ToLower(rr.Employee.Email)
		if rr.Status == RowStatusOK && email != "" {
			if firstRow, dup := seenInFile[email]; dup {
				rr.Status = RowStatusDuplicate
				rr.Errors = append(rr.Errors, fmt.Sprintf("duplicate email within file (first seen on row %d)", firstRow))
			} else if existingEmails[email] {
				rr.Status = RowStatusDuplicate
				rr.Errors = append(rr.Errors, "an employee with this email already exists")
			} else {
				seenInFile[email] = rowNum
			}
		}

		result.Rows = append(result.Rows, rr)
		result.Summary.Total++
		switch rr.Status {
		case RowStatusOK:
			result.Summary.Importable++
		case RowStatusInvalid:
			result.Summary.Invalid++
		case RowStatusDuplicate:
			result.Summary.Duplicates++
		}
	}

	return result
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func validateRow(rowNum int, cells []string, mapping map[int]Field) RowResult {
	rr := RowResult{Row: rowNum, Status: RowStatusOK}
	fields := make(map[Field]string, len(mapping))
	for col, field := range mapping {
		if col < len(cells) {
			fields[field] = strings.TrimSpace(cells[col])
		}
	}

	emp := &rr.Employee
	emp.FirstName = fields[FieldFirstName]
	emp.LastName = fields[FieldLastName]
	emp.FullName = fields[FieldFullName]
	emp.Email = fields[FieldEmail]
	emp.Department = fields[FieldDepartment]
	emp.Phone = fields[FieldPhone]

	// Names: full name can be derived from first+last, and vice versa.
	if emp.FullName == "" && (emp.FirstName != "" || emp.LastName != "") {
		emp.FullName = strings.TrimSpace(emp.FirstName + " " + emp.LastName)
	}
	if emp.FullName != "" && emp.FirstName == "" && emp.LastName == "" {
		first, last, found := strings.Cut(emp.FullName, " ")
		emp.FirstName = first
		if found {
			emp.LastName = last
		}
	}
	if emp.FullName == "" {
		rr.Errors = append(rr.Errors, "name is required")
	}

	// Email
	switch {
	case emp.Email == "":
		rr.Errors = append(rr.Errors, "email is required")
	case !emailRe.MatchString(emp.Email):
		rr.Errors = append(rr.Errors, fmt.Sprintf("invalid email address %q", emp.Email))
	}

	// Role: blank defaults, anything else must be a known value
	roleValue := strings.ToLower(fields[FieldRole])
	switch {
	case roleValue == "":
		emp.Role = models.EmployeeRoleEmployee
	case models.ValidEmployeeRole(models.EmployeeRole(roleValue)):
		emp.Role = models.EmployeeRole(roleValue)
	default:
		rr.Errors = append(rr.Errors, fmt.Sprintf("unknown role %q", fields[FieldRole]))
	}

	// Skills: JSON array or comma-separated
	if raw := fields[FieldSkills]; raw != "" {
		skills, warn := parseSkills(raw)
		emp.Skills = skills
		if warn != "" {
			rr.Warnings = append(rr.Warnings, warn)
		}
	}

	if len(rr.Errors) > 0 {
		rr.Status = RowStatusInvalid
	}
	return rr
}

func parseSkills(raw string) (skills []string, warning string) {
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &skills); err == nil {
			return dedupeTrimmed(skills), ""
		}
		warning = "skills looked like JSON but did not parse; treated as comma-separated"
	}
	return dedupeTrimmed(strings.Split(raw, ",")), warning
}

func dedupeTrimmed(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			continue
		}
		seen[strings.ToLower(s)] = true
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
