package repository

import (
	"time"

	"docuflow-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByDomain(domain string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	CreateBatch(employees []models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByEmail(orgID uuid.UUID, email string) (*models.Employee, error)
	GetByOrganization(orgID uuid.UUID, filter EmployeeFilter, limit, offset int) ([]models.Employee, int64, error)
	GetEmailSet(orgID uuid.UUID) (map[string]bool, error)
	CountByOrganization(orgID uuid.UUID) (int64, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
}

// DocumentRepositoryInterface defines the interface for document repository operations
type DocumentRepositoryInterface interface {
	Create(doc *models.Document) error
	GetByID(id uuid.UUID) (*models.Document, error)
	GetByOrganization(orgID uuid.UUID, filter DocumentFilter, limit, offset int) ([]models.Document, int64, error)
	GetByRequest(requestID uuid.UUID) ([]models.Document, error)
	CountByOrganizationSince(orgID uuid.UUID, since time.Time) (int64, error)
	Update(doc *models.Document) error
	Delete(id uuid.UUID) error
}

// DocumentRequestRepositoryInterface defines the interface for document request repository operations
type DocumentRequestRepositoryInterface interface {
	Create(req *models.DocumentRequest) error
	GetByID(id uuid.UUID) (*models.DocumentRequest, error)
	GetByIDWithEmployee(id uuid.UUID) (*models.DocumentRequest, error)
	GetByOrganization(orgID uuid.UUID, filter RequestFilter, limit, offset int) ([]models.DocumentRequest, int64, error)
	GetOpenByEmployee(employeeID uuid.UUID) ([]models.DocumentRequest, error)
	CountOpenByOrganization(orgID uuid.UUID) (int64, error)
	Update(req *models.DocumentRequest) error
	Delete(id uuid.UUID) error
}

// RoutingRuleRepositoryInterface defines the interface for routing rule repository operations
type RoutingRuleRepositoryInterface interface {
	Create(rule *models.RoutingRule) error
	GetByID(id uuid.UUID) (*models.RoutingRule, error)
	GetByOrganization(orgID uuid.UUID) ([]models.RoutingRule, error)
	CountActiveByOrganization(orgID uuid.UUID) (int64, error)
	Update(rule *models.RoutingRule) error
	UpdatePriorities(priorities map[uuid.UUID]int) error
	Delete(id uuid.UUID) error
}

// StorageConfigRepositoryInterface defines the interface for storage config repository operations
type StorageConfigRepositoryInterface interface {
	Create(sc *models.StorageConfig) error
	GetByID(id uuid.UUID) (*models.StorageConfig, error)
	GetByOrganization(orgID uuid.UUID) ([]models.StorageConfig, error)
	GetByName(orgID uuid.UUID, name string) (*models.StorageConfig, error)
	GetDefault(orgID uuid.UUID) (*models.StorageConfig, error)
	SetDefault(orgID, id uuid.UUID) error
	CountByOrganizationAndStatus(orgID uuid.UUID, status models.StorageStatus) (int64, error)
	Update(sc *models.StorageConfig) error
	Delete(id uuid.UUID) error
}

// EmailAccountRepositoryInterface defines the interface for email account repository operations
type EmailAccountRepositoryInterface interface {
	Create(account *models.EmailAccount) error
	GetByID(id uuid.UUID) (*models.EmailAccount, error)
	GetByAddress(address string) (*models.EmailAccount, error)
	GetByOrganization(orgID uuid.UUID) ([]models.EmailAccount, error)
	GetConnectedByOrganization(orgID uuid.UUID) ([]models.EmailAccount, error)
	Update(account *models.EmailAccount) error
	Delete(id uuid.UUID) error
}

// ActivityLogRepositoryInterface defines the interface for activity log repository operations
type ActivityLogRepositoryInterface interface {
	Create(entry *models.ActivityLog) error
	GetByOrganization(orgID uuid.UUID, filter ActivityFilter, limit, offset int) ([]models.ActivityLog, int64, error)
}
