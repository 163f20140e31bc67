package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ActivityAction identifies what happened in an activity log entry
type ActivityAction string

const (
	ActivityActionCreated       ActivityAction = "created"
	ActivityActionUpdated       ActivityAction = "updated"
	ActivityActionDeleted       ActivityAction = "deleted"
	ActivityActionImported      ActivityAction = "imported"
	ActivityActionRequestSent   ActivityAction = "request_sent"
	ActivityActionReminderSent  ActivityAction = "reminder_sent"
	ActivityActionDocumentStore ActivityAction = "document_stored"
	ActivityActionDocumentFail  ActivityAction = "document_failed"
	ActivityActionConnected     ActivityAction = "connected"
	ActivityActionDisconnected  ActivityAction = "disconnected"
)

// ActivityLog is the per-organization audit trail
type ActivityLog struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ActorEmail     string          `json:"actor_email" gorm:"size:255"` // empty for system actions
	Action         ActivityAction  `json:"action" gorm:"type:varchar(40);not null;index"`
	EntityType     string          `json:"entity_type" gorm:"size:50;index"`
	EntityID       *uuid.UUID      `json:"entity_id,omitempty" gorm:"type:uuid"`
	Detail         json.RawMessage `json:"detail,omitempty" gorm:"type:jsonb"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}
