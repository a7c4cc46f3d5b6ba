package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/apperror"
	"github.com/carson-networks/budget-planner/internal/operator/actions"
	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/table"
	"github.com/carson-networks/budget-planner/internal/upload"
)

// Routine represents a routine activity in the service layer.
type Routine struct {
	ID          uuid.UUID
	Title       string
	Description string
	Day         string
	Time        string
	Icon        string
	ImageURL    string
	Completed   bool
	CreatedAt   time.Time
}

// RoutineInput describes a routine activity. Days holds weekday names
// ("domingo".."sabado"); Time is "HH:MM" (24h).
type RoutineInput struct {
	Title       string
	Description string
	Days        []string
	Time        string
	Icon        string
	Image       *upload.File
}

// RoutineService handles the weekly routine.
type RoutineService struct {
	storage  *storage.Storage
	operator processor
	uploader upload.Uploader
}

func NewRoutineService(store *storage.Storage, op processor, uploader upload.Uploader) *RoutineService {
	return &RoutineService{storage: store, operator: op, uploader: uploader}
}

// CreateRoutine stores one routine per selected day and returns their IDs.
func (s *RoutineService) CreateRoutine(ctx context.Context, input RoutineInput) ([]uuid.UUID, error) {
	write, err := s.routineWrite(ctx, input)
	if err != nil {
		return nil, err
	}

	routines := make([]table.RoutineWrite, 0, len(input.Days))
	for _, day := range uniqueDays(input.Days) {
		w := *write
		w.Day = day
		routines = append(routines, w)
	}

	action := &actions.CreateRoutines{Routines: routines}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.IDs, nil
}

// UpdateRoutine replaces one routine. It moves to the first selected day.
func (s *RoutineService) UpdateRoutine(ctx context.Context, id uuid.UUID, input RoutineInput) error {
	write, err := s.routineWrite(ctx, input)
	if err != nil {
		return err
	}
	write.Day = input.Days[0]
	return s.operator.Process(ctx, &actions.UpdateRoutine{ID: id, Routine: *write})
}

// ToggleRoutine flips the completion flag and returns the new value.
func (s *RoutineService) ToggleRoutine(ctx context.Context, id uuid.UUID) (bool, error) {
	action := &actions.ToggleRoutine{ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return false, err
	}
	return action.Completed, nil
}

func (s *RoutineService) DeleteRoutine(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteRoutine{ID: id})
}

// ListRoutines returns the routines of one day ordered by time. An empty
// day returns the whole week.
func (s *RoutineService) ListRoutines(ctx context.Context, day string) ([]Routine, error) {
	if day != "" && !table.ValidWeekdayName(day) {
		return nil, apperror.Invalid("unknown day " + day)
	}
	rows, err := s.storage.Routines.List(ctx, day)
	if err != nil {
		return nil, err
	}
	routines := make([]Routine, len(rows))
	for i, row := range rows {
		routines[i] = Routine{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Day:         row.Day,
			Time:        row.Time,
			Icon:        row.Icon,
			ImageURL:    row.ImageURL,
			Completed:   row.Completed,
			CreatedAt:   row.CreatedAt,
		}
	}
	return routines, nil
}

// routineWrite validates input and uploads its image. The returned write has
// no day set.
func (s *RoutineService) routineWrite(ctx context.Context, input RoutineInput) (*table.RoutineWrite, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.Invalid("title is required")
	}
	if len(input.Days) == 0 {
		return nil, apperror.Invalid("select at least one day")
	}
	for _, day := range input.Days {
		if !table.ValidWeekdayName(day) {
			return nil, apperror.Invalid("unknown day " + day)
		}
	}
	if _, err := time.Parse("15:04", input.Time); err != nil || len(input.Time) != len("15:04") {
		return nil, apperror.Invalid("time must be HH:MM")
	}

	write := &table.RoutineWrite{
		Title:       title,
		Description: input.Description,
		Time:        input.Time,
		Icon:        input.Icon,
	}
	if input.Image != nil {
		url, err := s.uploader.Upload(ctx, input.Image)
		if err != nil {
			return nil, apperror.Upload(err)
		}
		write.ImageURL = url
	}
	return write, nil
}

func uniqueDays(days []string) []string {
	out := make([]string, 0, len(days))
	for _, day := range days {
		if !slices.Contains(out, day) {
			out = append(out, day)
		}
	}
	return out
}
