package models

import (
	"encoding/json"
)

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name        string          `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string          `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	Domain      string          `json:"domain" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Description string          `json:"description" gorm:"type:text"`
	Settings    json.RawMessage `json:"settings" gorm:"type:jsonb"`

	// Relationships
	Employees      []Employee        `json:"employees,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	RoutingRules   []RoutingRule     `json:"routing_rules,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	StorageConfigs []StorageConfig   `json:"storage_configs,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	EmailAccounts  []EmailAccount    `json:"email_accounts,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Documents      []Document        `json:"documents,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Requests       []DocumentRequest `json:"requests,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// OrganizationSettings is the decoded form of Organization.Settings
type OrganizationSettings struct {
	AllowedFileTypes  []string `json:"allowed_file_types,omitempty"`
	MaxAttachmentMB   int      `json:"max_attachment_mb,omitempty"`
	ReminderAfterDays int      `json:"reminder_after_days,omitempty"`
}

// DefaultOrganizationSettings returns the settings applied when an organization
// has not customized anything yet.
func DefaultOrganizationSettings() OrganizationSettings {
	return OrganizationSettings{
		AllowedFileTypes:  []string{"pdf", "doc", "docx", "xls", "xlsx", "png", "jpg", "jpeg"},
		MaxAttachmentMB:   25,
		ReminderAfterDays: 3,
	}
}

// DecodeSettings returns the organization settings, falling back to defaults
// for anything unset.
func (o *Organization) DecodeSettings() OrganizationSettings {
	settings := DefaultOrganizationSettings()
	if len(o.Settings) == 0 {
		return settings
	}
	var stored OrganizationSettings
	if err := json.Unmarshal(o.Settings, &stored); err != nil {
		return settings
	}
	if len(stored.AllowedFileTypes) > 0 {
		settings.AllowedFileTypes = stored.AllowedFileTypes
	}
	if stored.MaxAttachmentMB > 0 {
		settings.MaxAttachmentMB = stored.MaxAttachmentMB
	}
	if stored.ReminderAfterDays > 0 {
		settings.ReminderAfterDays = stored.ReminderAfterDays
	}
	return settings
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
