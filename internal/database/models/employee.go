package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRole represents the role of an employee in an organization
type EmployeeRole string

const (
	EmployeeRoleEmployee   EmployeeRole = "employee"
	EmployeeRoleManager    EmployeeRole = "manager"
	EmployeeRoleContractor EmployeeRole = "contractor"
	EmployeeRoleExternal   EmployeeRole = "external"
)

// ValidEmployeeRole reports whether role is one of the known employee roles.
func ValidEmployeeRole(role EmployeeRole) bool {
	switch role {
	case EmployeeRoleEmployee, EmployeeRoleManager, EmployeeRoleContractor, EmployeeRoleExternal:
		return true
	}
	return false
}

// EmployeeSource records how the employee record entered the system
type EmployeeSource string

const (
	EmployeeSourceManual EmployeeSource = "manual"
	EmployeeSourceImport EmployeeSource = "import"
)

// Employee represents a person the organization collects documents from
type Employee struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_employees_org_email_active,where:deleted_at IS NULL" validate:"required"`
	FullName       string          `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	FirstName      string          `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName       string          `json:"last_name" gorm:"size:100" validate:"max=100"`
	Email          string          `json:"email" gorm:"uniqueIndex:idx_employees_org_email_active,where:deleted_at IS NULL;not null;size:255" validate:"required,email,max=255"` // Partial unique index excludes soft-deleted records so an employee can be re-added
	Department     string          `json:"department" gorm:"size:100"`
	Role           EmployeeRole    `json:"role" gorm:"type:varchar(50);not null;default:'employee'" validate:"required"`
	Skills         json.RawMessage `json:"skills" gorm:"type:jsonb"`
	PhoneNumber    string          `json:"phone_number" gorm:"size:30"`
	IsActive       bool            `json:"is_active" gorm:"default:true"`
	Source         EmployeeSource  `json:"source" gorm:"type:varchar(20);default:'manual'"`
	DeletedAt      gorm.DeletedAt  `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	Organization Organization      `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Requests     []DocumentRequest `json:"requests,omitempty" gorm:"foreignKey:EmployeeID"`
	Documents    []Document        `json:"documents,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
