package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailProvider identifies the mail provider an account is connected through
type EmailProvider string

const (
	EmailProviderGoogle    EmailProvider = "google"
	EmailProviderMicrosoft EmailProvider = "microsoft"
)

// EmailAccountStatus tracks connection health of an email account
type EmailAccountStatus string

const (
	EmailAccountStatusConnected      EmailAccountStatus = "connected"
	EmailAccountStatusReauthRequired EmailAccountStatus = "reauth_required"
	EmailAccountStatusDisconnected   EmailAccountStatus = "disconnected"
)

// EmailAccount represents an organization's connected mailbox used to send
// document requests and receive inbound attachments.
type EmailAccount struct {
	BaseModel
	OrganizationID uuid.UUID          `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_email_accounts_org_address" validate:"required"`
	Provider       EmailProvider      `json:"provider" gorm:"type:varchar(20);not null" validate:"required"`
	Address        string             `json:"address" gorm:"not null;size:255;uniqueIndex:idx_email_accounts_org_address" validate:"required,email,max=255"`
	DisplayName    string             `json:"display_name" gorm:"size:200"`
	AccessToken    string             `json:"-" gorm:"type:text"`
	RefreshToken   string             `json:"-" gorm:"type:text"`
	TokenExpiry    *time.Time         `json:"token_expiry,omitempty"`
	Status         EmailAccountStatus `json:"status" gorm:"type:varchar(30);not null;default:'disconnected'"`
	LastPolledAt   *time.Time         `json:"last_polled_at,omitempty"`
	LastError      string             `json:"last_error,omitempty" gorm:"size:500"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TokenExpired reports whether the access token is past (or within a minute
// of) its expiry.
func (a *EmailAccount) TokenExpired(now time.Time) bool {
	if a.TokenExpiry == nil {
		return false
	}
	return now.Add(time.Minute).After(*a.TokenExpiry)
}

// TableName returns the table name for EmailAccount
func (EmailAccount) TableName() string {
	return "email_accounts"
}
