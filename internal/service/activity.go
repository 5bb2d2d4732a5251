package service

import (
	"context"

	"github.com/chosenhack/toprentbillfinal/internal/domain/activity"
)

// ActivityService exposes the audit log
type ActivityService interface {
	ListActivities(ctx context.Context) ([]*activity.Activity, error)
	ListActivitiesByCustomer(ctx context.Context, customerID string) ([]*activity.Activity, error)
}

type activityService struct {
	ServiceParams
}

// NewActivityService creates a new activity service
func NewActivityService(params ServiceParams) ActivityService {
	return &activityService{
		ServiceParams: params,
	}
}

func (s *activityService) ListActivities(ctx context.Context) ([]*activity.Activity, error) {
	return s.ActivityRepo.List(ctx)
}

func (s *activityService) ListActivitiesByCustomer(ctx context.Context, customerID string) ([]*activity.Activity, error) {
	return s.ActivityRepo.ListByCustomer(ctx, customerID)
}
