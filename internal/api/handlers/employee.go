package handlers

import (
	"errors"
	"net/http"

	"docuflow-backend/internal/auth"
	apperrors "docuflow-backend/internal/errors"
	"docuflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler handles HTTP requests for employees, including bulk imports
type EmployeeHandler struct {
	service       service.EmployeeServiceInterface
	importService service.ImportServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(service service.EmployeeServiceInterface, importService service.ImportServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{service: service, importService: importService}
}

// CreateEmployee handles POST /api/v1/employees
// @Summary Create a new employee
// @Description Create a new employee in an organization
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} service.EmployeeResponse "Successfully created employee"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Organization mismatch"
// @Failure 409 {object} map[string]interface{} "Employee already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if !tenantMatches(c, req.OrganizationID) {
		return
	}

	employee, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployee handles GET /api/v1/employees/:id
// @Summary Get employee by ID
// @Description Get a specific employee by its UUID
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} service.EmployeeResponse "Successfully retrieved employee"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	employee, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get employee", "details": err.Error()})
		return
	}
	if tenantForbidden(c, employee.OrganizationID, apperrors.ErrEmployeeNotFound) {
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ownsEmployee verifies the target employee belongs to the caller's
// organization before a mutation
func (h *EmployeeHandler) ownsEmployee(c *gin.Context, id uuid.UUID) bool {
	if _, authenticated := auth.GetAuthClaims(c); !authenticated {
		return true
	}
	employee, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get employee", "details": err.Error()})
		}
		return false
	}
	return !tenantForbidden(c, employee.OrganizationID, apperrors.ErrEmployeeNotFound)
}

// ListEmployees handles GET /api/v1/employees
// @Summary List employees by organization
// @Description Get employees of an organization with optional search, department and active filters
// @Tags employees
// @Accept json
// @Produce json
// @Param organization_id query string false "Organization ID (UUID); defaults to the authenticated organization"
// @Param search query string false "Match against name or email"
// @Param department query string false "Filter by department"
// @Param active query bool false "Only active employees"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved employees"
// @Failure 400 {object} map[string]interface{} "Missing or invalid organization_id"
// @Failure 403 {object} map[string]interface{} "Organization mismatch"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	orgID, ok := requireOrganizationID(c)
	if !ok {
		return
	}

	page, pageSize, limit, offset := pagination(c)
	opts := service.ListEmployeesOptions{
		Search:     c.Query("search"),
		Department: c.Query("department"),
		ActiveOnly: c.Query("active") == "true",
	}

	employees, total, err := h.service.GetByOrganization(orgID, opts, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get employees", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employees": employees,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateEmployee handles PUT /api/v1/employees/:id
// @Summary Update employee
// @Description Update an existing employee by ID
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param employee body service.UpdateEmployeeRequest true "Updated employee data"
// @Success 200 {object} service.EmployeeResponse "Successfully updated employee"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 409 {object} map[string]interface{} "Email already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}
	if !h.ownsEmployee(c, id) {
		return
	}

	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	employee, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrEmployeeExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles DELETE /api/v1/employees/:id
// @Summary Delete employee
// @Description Soft-delete an employee by ID
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 204 "Successfully deleted employee"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}
	if !h.ownsEmployee(c, id) {
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// PreviewImport handles POST /api/v1/employees/import/preview
// @Summary Preview an employee import
// @Description Validate a CSV/XLSX upload and report per-row outcomes without writing anything
// @Tags employees
// @Accept multipart/form-data
// @Produce json
// @Param organization_id query string false "Organization ID (UUID); defaults to the authenticated organization"
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} importer.Result "Validation outcome per row"
// @Failure 400 {object} map[string]interface{} "Invalid upload"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/import/preview [post]
func (h *EmployeeHandler) PreviewImport(c *gin.Context) {
	orgID, ok := requireOrganizationID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required", "details": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
		return
	}
	defer file.Close()

	result, err := h.importService.Preview(orgID, fileHeader.Filename, file)
	if err != nil {
		h.writeImportError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CommitImport handles POST /api/v1/employees/import
// @Summary Import employees from a file
// @Description Validate a CSV/XLSX upload and insert the importable rows. Invalid and duplicate rows are skipped.
// @Tags employees
// @Accept multipart/form-data
// @Produce json
// @Param organization_id query string false "Organization ID (UUID); defaults to the authenticated organization"
// @Param file formData file true "CSV or XLSX file"
// @Success 200 {object} service.ImportCommitResponse "Import outcome"
// @Failure 400 {object} map[string]interface{} "Invalid upload"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /employees/import [post]
func (h *EmployeeHandler) CommitImport(c *gin.Context) {
	orgID, ok := requireOrganizationID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required", "details": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file", "details": err.Error()})
		return
	}
	defer file.Close()

	resp, err := h.importService.Commit(orgID, actorEmail(c), fileHeader.Filename, file)
	if err != nil {
		h.writeImportError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *EmployeeHandler) writeImportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrOrganizationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnsupportedImportFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process import", "details": err.Error()})
	}
}
