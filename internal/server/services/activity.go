package services

import (
	"context"
	"fmt"

	"github.com/printflow/printflow/internal/server/models"
	"github.com/printflow/printflow/internal/server/repositories/activity"
)

const defaultActivityLimit = 50

// ActivityService records and lists the audit trail.
type ActivityService struct {
	activity activity.Repository
}

func NewActivityService(repo activity.Repository) *ActivityService {
	return &ActivityService{activity: repo}
}

// Record appends an audit entry. Failures are returned but callers generally
// treat auditing as best effort.
func (s *ActivityService) Record(ctx context.Context, userID, action, details, ip string) error {
	entry := &models.ActivityLog{
		UserID:    userID,
		Action:    action,
		Details:   details,
		IPAddress: ip,
	}
	if err := s.activity.Append(ctx, entry); err != nil {
		return fmt.Errorf("error recording activity: %w", err)
	}
	return nil
}

// Recent returns the newest entries, up to limit; limit <= 0 uses a default.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.activity.List(ctx, limit)
}
