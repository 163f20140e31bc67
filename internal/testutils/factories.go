package testutils

import (
	"time"

	"docuflow-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-org-" + id.String()[:8],
		DisplayName: "Test Organization",
		Domain:      id.String()[:8] + ".test.com",
		Description: "A test organization",
		Settings:    nil,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name
	return org
}

// WithDomain sets a custom domain for the organization
func (f *OrganizationFactory) WithDomain(domain string) *models.Organization {
	org := f.Create()
	org.Domain = domain
	return org
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values. The email is unique per
// call so batches of employees never collide on the org/email index.
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		FullName:       "Jane Doe",
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane." + id.String()[:8] + "@test.com",
		Department:     "Finance",
		Role:           models.EmployeeRoleEmployee,
		PhoneNumber:    "+1-555-0123",
		IsActive:       true,
		Source:         models.EmployeeSourceManual,
	}
}

// WithOrganization sets the organization ID for the employee
func (f *EmployeeFactory) WithOrganization(orgID uuid.UUID) *models.Employee {
	employee := f.Create()
	employee.OrganizationID = orgID
	return employee
}

// WithEmail sets a custom email for the employee
func (f *EmployeeFactory) WithEmail(email string) *models.Employee {
	employee := f.Create()
	employee.Email = email
	return employee
}

// WithRole sets a custom role for the employee
func (f *EmployeeFactory) WithRole(role models.EmployeeRole) *models.Employee {
	employee := f.Create()
	employee.Role = role
	return employee
}

// StorageConfigFactory provides methods to create test StorageConfig data
type StorageConfigFactory struct{}

// NewStorageConfigFactory creates a new StorageConfigFactory
func NewStorageConfigFactory() *StorageConfigFactory {
	return &StorageConfigFactory{}
}

// Create creates a test StorageConfig with default values
func (f *StorageConfigFactory) Create() *models.StorageConfig {
	return &models.StorageConfig{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Primary Storage",
		Provider:       models.StorageProviderBuiltin,
		RootPath:       "documents",
		Status:         models.StorageStatusConnected,
		IsDefault:      true,
	}
}

// WithOrganization sets the organization ID for the storage config
func (f *StorageConfigFactory) WithOrganization(orgID uuid.UUID) *models.StorageConfig {
	sc := f.Create()
	sc.OrganizationID = orgID
	return sc
}

// WithProvider sets a custom provider for the storage config
func (f *StorageConfigFactory) WithProvider(provider models.StorageProvider) *models.StorageConfig {
	sc := f.Create()
	sc.Provider = provider
	return sc
}

// RoutingRuleFactory provides methods to create test RoutingRule data
type RoutingRuleFactory struct{}

// NewRoutingRuleFactory creates a new RoutingRuleFactory
func NewRoutingRuleFactory() *RoutingRuleFactory {
	return &RoutingRuleFactory{}
}

// Create creates a test RoutingRule with default values
func (f *RoutingRuleFactory) Create() *models.RoutingRule {
	return &models.RoutingRule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:  uuid.New(),
		Name:            "Invoices",
		Description:     "Route invoice mail",
		Priority:        10,
		IsActive:        true,
		SubjectPattern:  "invoice",
		StorageConfigID: uuid.New(),
		FolderTemplate:  "Invoices/{year}/{month}",
	}
}

// WithOrganization sets the organization ID for the rule
func (f *RoutingRuleFactory) WithOrganization(orgID uuid.UUID) *models.RoutingRule {
	rule := f.Create()
	rule.OrganizationID = orgID
	return rule
}

// WithStorageConfig sets the destination storage config for the rule
func (f *RoutingRuleFactory) WithStorageConfig(scID uuid.UUID) *models.RoutingRule {
	rule := f.Create()
	rule.StorageConfigID = scID
	return rule
}

// WithPriority sets a custom priority for the rule
func (f *RoutingRuleFactory) WithPriority(priority int) *models.RoutingRule {
	rule := f.Create()
	rule.Priority = priority
	return rule
}

// DocumentRequestFactory provides methods to create test DocumentRequest data
type DocumentRequestFactory struct{}

// NewDocumentRequestFactory creates a new DocumentRequestFactory
func NewDocumentRequestFactory() *DocumentRequestFactory {
	return &DocumentRequestFactory{}
}

// Create creates a test DocumentRequest with default values
func (f *DocumentRequestFactory) Create() *models.DocumentRequest {
	return &models.DocumentRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		EmployeeID:     uuid.New(),
		Title:          "Signed contract",
		Message:        "Please reply with the signed contract attached.",
		Status:         models.RequestStatusPending,
	}
}

// WithOrganization sets the organization ID for the request
func (f *DocumentRequestFactory) WithOrganization(orgID uuid.UUID) *models.DocumentRequest {
	req := f.Create()
	req.OrganizationID = orgID
	return req
}

// WithEmployee sets the employee ID for the request
func (f *DocumentRequestFactory) WithEmployee(employeeID uuid.UUID) *models.DocumentRequest {
	req := f.Create()
	req.EmployeeID = employeeID
	return req
}

// WithStatus sets a custom status for the request
func (f *DocumentRequestFactory) WithStatus(status models.RequestStatus) *models.DocumentRequest {
	req := f.Create()
	req.Status = status
	return req
}

// EmailAccountFactory provides methods to create test EmailAccount data
type EmailAccountFactory struct{}

// NewEmailAccountFactory creates a new EmailAccountFactory
func NewEmailAccountFactory() *EmailAccountFactory {
	return &EmailAccountFactory{}
}

// Create creates a test EmailAccount with default values
func (f *EmailAccountFactory) Create() *models.EmailAccount {
	id := uuid.New()
	return &models.EmailAccount{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Provider:       models.EmailProviderGoogle,
		Address:        "docs." + id.String()[:8] + "@test.com",
		DisplayName:    "Document Inbox",
		Status:         models.EmailAccountStatusConnected,
	}
}

// WithOrganization sets the organization ID for the account
func (f *EmailAccountFactory) WithOrganization(orgID uuid.UUID) *models.EmailAccount {
	account := f.Create()
	account.OrganizationID = orgID
	return account
}

// WithAddress sets a custom address for the account
func (f *EmailAccountFactory) WithAddress(address string) *models.EmailAccount {
	account := f.Create()
	account.Address = address
	return account
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a test Document with default values
func (f *DocumentFactory) Create() *models.Document {
	return &models.Document{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		FileName:       "contract.pdf",
		FileType:       "pdf",
		FileSize:       2048,
		MimeType:       "application/pdf",
		SenderEmail:    "jane.doe@test.com",
		SenderName:     "Jane Doe",
		Subject:        "Signed contract",
		ReceivedAt:     time.Now(),
		Status:         models.DocumentStatusStored,
	}
}

// WithOrganization sets the organization ID for the document
func (f *DocumentFactory) WithOrganization(orgID uuid.UUID) *models.Document {
	doc := f.Create()
	doc.OrganizationID = orgID
	return doc
}

// WithEmployee sets the employee ID for the document
func (f *DocumentFactory) WithEmployee(employeeID uuid.UUID) *models.Document {
	doc := f.Create()
	doc.EmployeeID = &employeeID
	return doc
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization    *OrganizationFactory
	Employee        *EmployeeFactory
	StorageConfig   *StorageConfigFactory
	RoutingRule     *RoutingRuleFactory
	DocumentRequest *DocumentRequestFactory
	EmailAccount    *EmailAccountFactory
	Document        *DocumentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:    NewOrganizationFactory(),
		Employee:        NewEmployeeFactory(),
		StorageConfig:   NewStorageConfigFactory(),
		RoutingRule:     NewRoutingRuleFactory(),
		DocumentRequest: NewDocumentRequestFactory(),
		EmailAccount:    NewEmailAccountFactory(),
		Document:        NewDocumentFactory(),
	}
}

// CreateTenantFixture creates an organization with one employee, a connected
// storage config and a routing rule pointed at it.
func (fs *FactorySet) CreateTenantFixture() (*models.Organization, *models.Employee, *models.StorageConfig, *models.RoutingRule) {
	org := fs.Organization.Create()
	employee := fs.Employee.WithOrganization(org.ID)
	sc := fs.StorageConfig.WithOrganization(org.ID)
	rule := fs.RoutingRule.WithOrganization(org.ID)
	rule.StorageConfigID = sc.ID
	return org, employee, sc, rule
}
