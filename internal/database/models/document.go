package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus tracks a document through the ingest pipeline
type DocumentStatus string

const (
	DocumentStatusReceived  DocumentStatus = "received"
	DocumentStatusValidated DocumentStatus = "validated"
	DocumentStatusRouted    DocumentStatus = "routed"
	DocumentStatusStored    DocumentStatus = "stored"
	DocumentStatusFailed    DocumentStatus = "failed"
)

// Document represents a file received from an inbound email attachment
type Document struct {
	BaseModel
	OrganizationID  uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	EmployeeID      *uuid.UUID     `json:"employee_id,omitempty" gorm:"type:uuid;index"`
	RequestID       *uuid.UUID     `json:"request_id,omitempty" gorm:"type:uuid;index"`
	RoutingRuleID   *uuid.UUID     `json:"routing_rule_id,omitempty" gorm:"type:uuid"`
	StorageConfigID *uuid.UUID     `json:"storage_config_id,omitempty" gorm:"type:uuid"`
	FileName        string         `json:"file_name" gorm:"not null;size:255" validate:"required,max=255"`
	FileType        string         `json:"file_type" gorm:"size:20;index"`
	FileSize        int64          `json:"file_size"`
	MimeType        string         `json:"mime_type" gorm:"size:100"`
	SenderEmail     string         `json:"sender_email" gorm:"size:255;index"`
	SenderName      string         `json:"sender_name" gorm:"size:200"`
	Subject         string         `json:"subject" gorm:"size:500"`
	ReceivedAt      time.Time      `json:"received_at"`
	FolderPath      string         `json:"folder_path" gorm:"size:500"`
	StorageKey      string         `json:"storage_key" gorm:"size:600"`
	Status          DocumentStatus `json:"status" gorm:"type:varchar(20);not null;default:'received';index"`
	FailureReason   string         `json:"failure_reason,omitempty" gorm:"size:500"`

	// Relationships
	Organization  Organization     `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Employee      *Employee        `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
	Request       *DocumentRequest `json:"request,omitempty" gorm:"foreignKey:RequestID;constraint:OnDelete:SET NULL"`
	StorageConfig *StorageConfig   `json:"storage_config,omitempty" gorm:"foreignKey:StorageConfigID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}
