package service

import (
	"context"
	"io"

	"docuflow-backend/internal/database/models"
	"docuflow-backend/internal/importer"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service operations
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetByName(name string) (*OrganizationResponse, error)
	GetAll(limit, offset int) ([]OrganizationResponse, int64, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	UpdateSettings(id uuid.UUID, req *UpdateOrganizationSettingsRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
}

// EmployeeServiceInterface defines the interface for employee service operations
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(id uuid.UUID) (*EmployeeResponse, error)
	GetByOrganization(organizationID uuid.UUID, opts ListEmployeesOptions, limit, offset int) ([]EmployeeResponse, int64, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(id uuid.UUID) error
}

// ImportServiceInterface defines the interface for employee import operations
type ImportServiceInterface interface {
	Preview(orgID uuid.UUID, fileName string, file io.Reader) (*importer.Result, error)
	Commit(orgID uuid.UUID, actorEmail, fileName string, file io.Reader) (*ImportCommitResponse, error)
}

// DocumentServiceInterface defines the interface for document service operations
type DocumentServiceInterface interface {
	GetByID(id uuid.UUID) (*DocumentResponse, error)
	GetByOrganization(orgID uuid.UUID, opts ListDocumentsOptions, limit, offset int) ([]DocumentResponse, int64, error)
	DownloadURL(ctx context.Context, id uuid.UUID) (*DownloadURLResponse, error)
	Delete(ctx context.Context, id uuid.UUID, actorEmail string) error
}

// DocumentRequestServiceInterface defines the interface for document request service operations
type DocumentRequestServiceInterface interface {
	Create(req *CreateDocumentRequestRequest) (*DocumentRequestResponse, error)
	GetByID(id uuid.UUID) (*DocumentRequestResponse, error)
	GetByOrganization(orgID uuid.UUID, opts ListRequestsOptions, limit, offset int) ([]DocumentRequestResponse, int64, error)
	Update(id uuid.UUID, req *UpdateDocumentRequestRequest) (*DocumentRequestResponse, error)
	Send(ctx context.Context, id uuid.UUID, actorEmail string) (*DocumentRequestResponse, error)
	Remind(ctx context.Context, id uuid.UUID, actorEmail string) (*DocumentRequestResponse, error)
	Cancel(id uuid.UUID) (*DocumentRequestResponse, error)
	Delete(id uuid.UUID) error
}

// RoutingRuleServiceInterface defines the interface for routing rule service operations
type RoutingRuleServiceInterface interface {
	Create(req *CreateRoutingRuleRequest) (*RoutingRuleResponse, error)
	GetByID(id uuid.UUID) (*RoutingRuleResponse, error)
	GetByOrganization(orgID uuid.UUID) ([]RoutingRuleResponse, error)
	Update(id uuid.UUID, req *UpdateRoutingRuleRequest) (*RoutingRuleResponse, error)
	Reorder(orgID uuid.UUID, req *ReorderRoutingRulesRequest) error
	Test(orgID uuid.UUID, req *TestRoutingRequest) (*TestRoutingResponse, error)
	Delete(id uuid.UUID) error
}

// StorageConfigServiceInterface defines the interface for storage config service operations
type StorageConfigServiceInterface interface {
	Create(req *CreateStorageConfigRequest) (*StorageConfigResponse, error)
	GetByID(id uuid.UUID) (*StorageConfigResponse, error)
	GetByOrganization(orgID uuid.UUID) ([]StorageConfigResponse, error)
	Update(id uuid.UUID, req *UpdateStorageConfigRequest) (*StorageConfigResponse, error)
	SetDefault(id uuid.UUID) (*StorageConfigResponse, error)
	TestConnection(ctx context.Context, id uuid.UUID) (*StorageConfigResponse, error)
	Delete(id uuid.UUID, actorEmail string) error
}

// EmailAccountServiceInterface defines the interface for email account service operations
type EmailAccountServiceInterface interface {
	ConnectStart(provider models.EmailProvider, orgID uuid.UUID) (*ConnectStartResponse, error)
	ConnectCallback(ctx context.Context, provider models.EmailProvider, orgID uuid.UUID, code string) (*EmailAccountResponse, error)
	GetByID(id uuid.UUID) (*EmailAccountResponse, error)
	GetByOrganization(orgID uuid.UUID) ([]EmailAccountResponse, error)
	Disconnect(id uuid.UUID, actorEmail string) (*EmailAccountResponse, error)
	PollNow(id uuid.UUID) (*EmailAccountResponse, error)
	Delete(id uuid.UUID) error
}

// ActivityServiceInterface defines the interface for activity log operations
type ActivityServiceInterface interface {
	Record(orgID uuid.UUID, actorEmail string, action models.ActivityAction, entityType string, entityID *uuid.UUID, detail any)
	GetByOrganization(orgID uuid.UUID, opts ListActivityOptions, limit, offset int) ([]ActivityResponse, int64, error)
}

// IngestServiceInterface defines the interface for the inbound email pipeline
type IngestServiceInterface interface {
	Ingest(ctx context.Context, req *InboundEmailRequest) (*IngestResponse, error)
}

// DashboardServiceInterface defines the interface for dashboard operations
type DashboardServiceInterface interface {
	GetStats(orgID uuid.UUID) (*DashboardStatsResponse, error)
}
