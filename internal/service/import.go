package service

import (
	"fmt"
	"io"

	"docuflow-backend/internal/database/models"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/importer"
	"docuflow-backend/internal/repository"

	"github.com/google/uuid"
)

// ImportService handles CSV/Excel employee imports: a preview pass that
// validates without writing, and a commit pass that inserts the importable rows.
type ImportService struct {
	employeeRepo repository.EmployeeRepositoryInterface
	orgRepo      repository.OrganizationRepositoryInterface
	activity     *ActivityService
}

// NewImportService creates a new import service
func NewImportService(employeeRepo repository.EmployeeRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, activity *ActivityService) *ImportService {
	return &ImportService{
		employeeRepo: employeeRepo,
		orgRepo:      orgRepo,
		activity:     activity,
	}
}

// ImportCommitResponse reports what a commit actually inserted
type ImportCommitResponse struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Result   *importer.Result `json:"result"`
}

// Preview parses and validates an upload without writing anything
func (s *ImportService) Preview(orgID uuid.UUID, fileName string, file io.Reader) (*importer.Result, error) {
	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}

	headers, rows, err := importer.Parse(file, fileName)
	if err != nil {
		return nil, err
	}

	existing, err := s.employeeRepo.GetEmailSet(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing emails: %w", err)
	}

	return importer.Validate(headers, rows, existing), nil
}

// Commit parses, validates and inserts the importable rows in one batch.
// Invalid and duplicate rows are skipped, never aborting the whole file.
func (s *ImportService) Commit(orgID uuid.UUID, actorEmail, fileName string, file io.Reader) (*ImportCommitResponse, error) {
	result, err := s.Preview(orgID, fileName, file)
	if err != nil {
		return nil, err
	}

	employees := make([]models.Employee, 0, result.Summary.Importable)
	for _, row := range result.Rows {
		if row.Status != importer.RowStatusOK {
			continue
		}
		employees = append(employees, models.Employee{
			OrganizationID: orgID,
			FullName:       row.Employee.FullName,
			FirstName:      row.Employee.FirstName,
			LastName:       row.Employee.LastName,
			Email:          row.Employee.Email,
			Department:     row.Employee.Department,
			Role:           row.Employee.Role,
			Skills:         encodeStringSlice(row.Employee.Skills),
			PhoneNumber:    row.Employee.Phone,
			IsActive:       true,
			Source:         models.EmployeeSourceImport,
		})
	}

	if err := s.employeeRepo.CreateBatch(employees); err != nil {
		return nil, fmt.Errorf("failed to insert imported employees: %w", err)
	}

	s.activity.Record(orgID, actorEmail, models.ActivityActionImported, "employee", nil, map[string]any{
		"file_name":  fileName,
		"imported":   len(employees),
		"invalid":    result.Summary.Invalid,
		"duplicates": result.Summary.Duplicates,
	})

	return &ImportCommitResponse{
		Imported: len(employees),
		Skipped:  result.Summary.Total - len(employees),
		Result:   result,
	}, nil
}
