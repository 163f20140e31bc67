package service

import (
	"encoding/json"
	"fmt"

	"docuflow-backend/internal/database/models"
	"docuflow-backend/internal/logger"
	"docuflow-backend/internal/repository"

	"github.com/google/uuid"
)

// ActivityService records and lists the per-organization audit trail
type ActivityService struct {
	repo repository.ActivityLogRepositoryInterface
	log  *logger.Logger
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityLogRepositoryInterface, log *logger.Logger) *ActivityService {
	return &ActivityService{
		repo: repo,
		log:  log,
	}
}

// ActivityResponse represents one audit trail entry
type ActivityResponse struct {
	ID         uuid.UUID       `json:"id"`
	ActorEmail string          `json:"actor_email"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   *uuid.UUID      `json:"entity_id,omitempty"`
	Detail     json.RawMessage `json:"detail,omitempty" swaggertype:"object"`
	CreatedAt  string          `json:"created_at"`
}

// ListActivityOptions narrows the activity listing
type ListActivityOptions struct {
	Action     string
	EntityType string
	ActorEmail string
}

// Record writes one audit entry. Failures are logged, not returned: the audit
// trail must never abort the operation it describes.
func (s *ActivityService) Record(orgID uuid.UUID, actorEmail string, action models.ActivityAction, entityType string, entityID *uuid.UUID, detail any) {
	var encoded json.RawMessage
	if detail != nil {
		if data, err := json.Marshal(detail); err == nil {
			encoded = data
		}
	}

	entry := &models.ActivityLog{
		OrganizationID: orgID,
		ActorEmail:     actorEmail,
		Action:         action,
		EntityType:     entityType,
		EntityID:       entityID,
		Detail:         encoded,
	}

	if err := s.repo.Create(entry); err != nil {
		s.log.WithError(err).WithField("action", string(action)).Warn("failed to record activity")
	}
}

// GetByOrganization retrieves the organization's activity entries
func (s *ActivityService) GetByOrganization(orgID uuid.UUID, opts ListActivityOptions, limit, offset int) ([]ActivityResponse, int64, error) {
	filter := repository.ActivityFilter{
		Action:     models.ActivityAction(opts.Action),
		EntityType: opts.EntityType,
		ActorEmail: opts.ActorEmail,
	}
	entries, total, err := s.repo.GetByOrganization(orgID, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get activity: %w", err)
	}

	responses := make([]ActivityResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ActivityResponse{
			ID:         entry.ID,
			ActorEmail: entry.ActorEmail,
			Action:     string(entry.Action),
			EntityType: entry.EntityType,
			EntityID:   entry.EntityID,
			Detail:     entry.Detail,
			CreatedAt:  entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return responses, total, nil
}
