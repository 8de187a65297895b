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

// todoService handles todo-related business logic.
type todoService struct {
	db *gorm.DB
}

// NewTodoService creates a new TodoServicer.
func NewTodoService(db *gorm.DB) TodoServicer {
	return &todoService{db: db}
}

// ListTodos returns todos by ascending due date; undated todos come last.
func (s *todoService) ListTodos(ctx context.Context, filter TodoFilter, page pagination.PageRequest) (*pagination.Page[models.Todo], error) {
	q := s.db.WithContext(ctx).Model(&models.Todo{})
	if filter.Completed != nil {
		q = q.Where("completed = ?", *filter.Completed)
	}
	return listPage[models.Todo](q, "due_date IS NULL, due_date ASC, created_at ASC", page)
}

// GetTodo retrieves a todo by ID.
func (s *todoService) GetTodo(ctx context.Context, id string) (*models.Todo, error) {
	return findByID[models.Todo](ctx, s.db, id, apperrors.ErrTodoNotFound)
}

// CreateTodo creates a todo, widening a date-only due date to midnight UTC.
func (s *todoService) CreateTodo(ctx context.Context, in TodoInput) (*models.Todo, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}

	dueDate, err := optionalTimestamp(in.DueDate)
	if err != nil {
		return nil, err
	}

	todo := &models.Todo{
		Title:       title,
		Description: in.Description,
		Completed:   in.Completed,
		Priority:    in.Priority,
		DueDate:     dueDate,
	}

	if err := s.db.WithContext(ctx).Create(todo).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return todo, nil
}

// UpdateTodo patches a todo. An empty dueDate clears it.
func (s *todoService) UpdateTodo(ctx context.Context, id string, fields TodoUpdateFields) (*models.Todo, error) {
	updates := make(map[string]interface{})
	if fields.Title != nil {
		title := strings.TrimSpace(*fields.Title)
		if title == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title cannot be empty")
		}
		updates["title"] = title
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Completed != nil {
		updates["completed"] = *fields.Completed
	}
	if fields.Priority != nil {
		updates["priority"] = *fields.Priority
	}
	if fields.DueDate != nil {
		dueDate, err := optionalTimestamp(*fields.DueDate)
		if err != nil {
			return nil, err
		}
		if dueDate == nil {
			updates["due_date"] = nil
		} else {
			updates["due_date"] = *dueDate
		}
	}

	return updateByID[models.Todo](ctx, s.db, id, updates, apperrors.ErrTodoNotFound)
}

// DeleteTodo removes a todo.
func (s *todoService) DeleteTodo(ctx context.Context, id string) error {
	return deleteByID[models.Todo](ctx, s.db, id, apperrors.ErrTodoNotFound)
}

func optionalTimestamp(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := NormalizeTimestamp(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
