package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// RoutingRule represents a stored condition/action pair determining which
// storage destination and folder an inbound document is placed into.
//
// Conditions are AND-ed; a rule with no conditions matches every message.
type RoutingRule struct {
	BaseModel
	OrganizationID  uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name            string          `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Description     string          `json:"description" gorm:"size:500"`
	Priority        int             `json:"priority" gorm:"not null;default:0;index"` // higher wins
	IsActive        bool            `json:"is_active" gorm:"default:true"`
	SenderPattern   string          `json:"sender_pattern" gorm:"size:500"`
	SubjectPattern  string          `json:"subject_pattern" gorm:"size:500"`
	FileTypes       json.RawMessage `json:"file_types" gorm:"type:jsonb"`
	StorageConfigID uuid.UUID       `json:"storage_config_id" gorm:"type:uuid;not null" validate:"required"`
	FolderTemplate  string          `json:"folder_template" gorm:"not null;size:500" validate:"required,max=500"`

	// Relationships
	Organization  Organization  `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	StorageConfig StorageConfig `json:"storage_config,omitempty" gorm:"foreignKey:StorageConfigID;constraint:OnDelete:CASCADE"`
}

// DecodeFileTypes returns the rule's file-type condition as a string slice.
func (r *RoutingRule) DecodeFileTypes() []string {
	if len(r.FileTypes) == 0 {
		return nil
	}
	var types []string
	if err := json.Unmarshal(r.FileTypes, &types); err != nil {
		return nil
	}
	return types
}

// TableName returns the table name for RoutingRule
func (RoutingRule) TableName() string {
	return "routing_rules"
}
