package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RequestStatus tracks the lifecycle of a document request
type RequestStatus string

const (
	RequestStatusPending           RequestStatus = "pending"
	RequestStatusSent              RequestStatus = "sent"
	RequestStatusPartiallyReceived RequestStatus = "partially_received"
	RequestStatusCompleted         RequestStatus = "completed"
	RequestStatusOverdue           RequestStatus = "overdue"
	RequestStatusCancelled         RequestStatus = "cancelled"
)

// DocumentRequest represents a tracked outbound ask for an employee to supply
// one or more documents by email
type DocumentRequest struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	EmployeeID     uuid.UUID       `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title          string          `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Message        string          `json:"message" gorm:"type:text"`
	DocumentTypes  json.RawMessage `json:"document_types" gorm:"type:jsonb"` // requested file types, e.g. ["pdf","docx"]
	DueDate        *time.Time      `json:"due_date,omitempty"`
	Status         RequestStatus   `json:"status" gorm:"type:varchar(30);not null;default:'pending';index"`
	SentAt         *time.Time      `json:"sent_at,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	ReminderCount  int             `json:"reminder_count" gorm:"default:0"`
	LastReminderAt *time.Time      `json:"last_reminder_at,omitempty"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Employee     Employee     `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Documents    []Document   `json:"documents,omitempty" gorm:"foreignKey:RequestID"`
}

// DecodeDocumentTypes returns the requested file types as a string slice.
func (r *DocumentRequest) DecodeDocumentTypes() []string {
	if len(r.DocumentTypes) == 0 {
		return nil
	}
	var types []string
	if err := json.Unmarshal(r.DocumentTypes, &types); err != nil {
		return nil
	}
	return types
}

// IsOpen reports whether the request can still receive documents.
func (r *DocumentRequest) IsOpen() bool {
	switch r.Status {
	case RequestStatusPending, RequestStatusSent, RequestStatusPartiallyReceived, RequestStatusOverdue:
		return true
	}
	return false
}

// TableName returns the table name for DocumentRequest
func (DocumentRequest) TableName() string {
	return "document_requests"
}
