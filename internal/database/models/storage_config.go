package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StorageProvider identifies the backing file-storage service
type StorageProvider string

const (
	StorageProviderBuiltin     StorageProvider = "builtin"
	StorageProviderGoogleDrive StorageProvider = "google_drive"
	StorageProviderOneDrive    StorageProvider = "onedrive"
	StorageProviderSharePoint  StorageProvider = "sharepoint"
	StorageProviderAzureBlob   StorageProvider = "azure_blob"
)

// ValidStorageProvider reports whether provider is one of the supported providers.
func ValidStorageProvider(provider StorageProvider) bool {
	switch provider {
	case StorageProviderBuiltin, StorageProviderGoogleDrive, StorageProviderOneDrive,
		StorageProviderSharePoint, StorageProviderAzureBlob:
		return true
	}
	return false
}

// StorageStatus tracks connection health of a storage config
type StorageStatus string

const (
	StorageStatusConnected    StorageStatus = "connected"
	StorageStatusError        StorageStatus = "error"
	StorageStatusDisconnected StorageStatus = "disconnected"
)

// StorageConfig represents a tenant's configured connection to a file-storage
// provider: credentials plus a root location documents are placed under.
type StorageConfig struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string          `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Provider       StorageProvider `json:"provider" gorm:"type:varchar(30);not null" validate:"required"`
	RootPath       string          `json:"root_path" gorm:"size:500"` // folder, container or site root depending on provider
	Credentials    json.RawMessage `json:"-" gorm:"type:jsonb"`       // tokens or keys; never serialized in responses
	IsDefault      bool            `json:"is_default" gorm:"default:false"`
	Status         StorageStatus   `json:"status" gorm:"type:varchar(20);not null;default:'disconnected'"`
	LastVerifiedAt *time.Time      `json:"last_verified_at,omitempty"`
	LastError      string          `json:"last_error,omitempty" gorm:"size:500"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// StorageCredentials is the decoded form of StorageConfig.Credentials.
// Fields are provider specific: OAuth providers use the token triple, Azure
// Blob uses account name/key.
type StorageCredentials struct {
	AccessToken  string    `json:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenExpiry  time.Time `json:"token_expiry,omitempty"`
	AccountName  string    `json:"account_name,omitempty"`
	AccountKey   string    `json:"account_key,omitempty"`
	DriveID      string    `json:"drive_id,omitempty"`
	SiteID       string    `json:"site_id,omitempty"`
}

// DecodeCredentials returns the decoded credentials, empty when unset.
func (s *StorageConfig) DecodeCredentials() StorageCredentials {
	var creds StorageCredentials
	if len(s.Credentials) > 0 {
		_ = json.Unmarshal(s.Credentials, &creds)
	}
	return creds
}

// TableName returns the table name for StorageConfig
func (StorageConfig) TableName() string {
	return "storage_configs"
}
