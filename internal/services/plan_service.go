package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/models"
	"tradelog/internal/pagination"
)

// planService handles calendar plans.
type planService struct {
	db *gorm.DB
}

// NewPlanService creates a new PlanServicer.
func NewPlanService(db *gorm.DB) PlanServicer {
	return &planService{db: db}
}

// ListPlans returns the plans of one day ordered by start time.
func (s *planService) ListPlans(ctx context.Context, date string, page pagination.PageRequest) (*pagination.Page[models.Plan], error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, apperrors.ErrDateRequired
	}
	if err := checkPlanDate(date); err != nil {
		return nil, err
	}

	q := s.db.WithContext(ctx).Model(&models.Plan{}).Where("date = ?", date)
	return listPage[models.Plan](q, "start_time ASC, created_at ASC", page)
}

// GetPlan retrieves a plan by ID.
func (s *planService) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	return findByID[models.Plan](ctx, s.db, id, apperrors.ErrPlanNotFound)
}

// CreatePlan creates a plan.
func (s *planService) CreatePlan(ctx context.Context, in PlanInput) (*models.Plan, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if err := checkPlanDate(in.Date); err != nil {
		return nil, err
	}
	if in.StartTime == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "startTime is required")
	}

	plan := &models.Plan{
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Title:     title,
		Type:      in.Type,
		Notes:     in.Notes,
	}

	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plan, nil
}

// UpdatePlan applies the supplied fields to a plan.
func (s *planService) UpdatePlan(ctx context.Context, id string, fields PlanUpdateFields) (*models.Plan, error) {
	updates := make(map[string]interface{})
	if fields.Date != nil {
		if err := checkPlanDate(*fields.Date); err != nil {
			return nil, err
		}
		updates["date"] = *fields.Date
	}
	if fields.StartTime != nil && *fields.StartTime != "" {
		updates["start_time"] = *fields.StartTime
	}
	if fields.EndTime != nil {
		updates["end_time"] = *fields.EndTime
	}
	if fields.Title != nil {
		title := strings.TrimSpace(*fields.Title)
		if title == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title cannot be empty")
		}
		updates["title"] = title
	}
	if fields.Type != nil {
		updates["type"] = *fields.Type
	}
	if fields.Notes != nil {
		updates["notes"] = *fields.Notes
	}

	return updateByID[models.Plan](ctx, s.db, id, updates, apperrors.ErrPlanNotFound)
}

// DeletePlan removes a plan.
func (s *planService) DeletePlan(ctx context.Context, id string) error {
	return deleteByID[models.Plan](ctx, s.db, id, apperrors.ErrPlanNotFound)
}

// checkPlanDate accepts only calendar days; plans are matched on the exact string.
func checkPlanDate(date string) error {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidDate, err)
	}
	return nil
}
