package service

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-planner/internal/recurrence"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// Task represents a task in the service layer.
type Task struct {
	ID              uuid.UUID
	SeriesID        uuid.NullUUID
	Title           string
	Description     string
	Date            time.Time
	StartTime       string
	EndTime         string
	Icon            string
	Color           string
	Recurring       bool
	Frequency       recurrence.Frequency
	EndDate         *time.Time
	WeekDays        []int
	MonthDays       []int
	ParentRecurring bool
	Status          table.TaskStatus
	ElapsedTime     int64
	StartedAt       *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time
}

// TaskInput holds the editable fields of a task. With Recurring, Frequency
// and the optional EndDate, WeekDays (weekly/biweekly) and MonthDays
// (monthly) describe how the series repeats from Date.
type TaskInput struct {
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	EndTime     string
	Icon        string
	Color       string
	Recurring   bool
	Frequency   recurrence.Frequency
	EndDate     *time.Time
	WeekDays    []int
	MonthDays   []int
}

// TaskEditResult reports what an edit touched. Created is only filled when
// the series was regenerated.
type TaskEditResult struct {
	Updated int
	Deleted int
	Created []uuid.UUID
}

func taskFromStorage(row *table.Task) Task {
	return Task{
		ID:              row.ID,
		SeriesID:        row.SeriesID,
		Title:           row.Title,
		Description:     row.Description,
		Date:            row.Date,
		StartTime:       row.StartTime,
		EndTime:         row.EndTime,
		Icon:            row.Icon,
		Color:           row.Color,
		Recurring:       row.Recurring,
		Frequency:       recurrence.Frequency(row.RecurringFrequency),
		EndDate:         row.RecurringEndDate,
		WeekDays:        row.SelectedWeekDays,
		MonthDays:       row.SelectedMonthDays,
		ParentRecurring: row.ParentRecurring,
		Status:          row.Status,
		ElapsedTime:     row.ElapsedTime,
		StartedAt:       row.StartedAt,
		CompletedAt:     row.CompletedAt,
		CreatedAt:       row.CreatedAt,
	}
}

// applyTaskInput copies the editable fields onto task. Recurrence settings
// are only kept while the task is recurring.
func applyTaskInput(task *table.Task, input TaskInput) {
	task.Title = strings.TrimSpace(input.Title)
	task.Description = input.Description
	task.Date = recurrence.Day(input.Date)
	task.StartTime = input.StartTime
	task.EndTime = input.EndTime
	task.Icon = input.Icon
	task.Color = input.Color
	task.Recurring = input.Recurring
	task.RecurringFrequency = ""
	task.RecurringEndDate = nil
	task.SelectedWeekDays = nil
	task.SelectedMonthDays = nil
	if !input.Recurring {
		return
	}

	task.RecurringFrequency = string(input.Frequency)
	if input.EndDate != nil {
		end := recurrence.Day(*input.EndDate)
		task.RecurringEndDate = &end
	}
	switch input.Frequency {
	case recurrence.Weekly, recurrence.Biweekly:
		task.SelectedWeekDays = table.Ints(input.WeekDays)
	case recurrence.Monthly:
		task.SelectedMonthDays = table.Ints(input.MonthDays)
	}
}

// ruleOf builds the recurrence rule of input anchored at start.
func ruleOf(input TaskInput, start time.Time) recurrence.Rule {
	rule := recurrence.Rule{Frequency: input.Frequency, Start: start, End: input.EndDate}
	switch input.Frequency {
	case recurrence.Weekly, recurrence.Biweekly:
		for _, day := range input.WeekDays {
			rule.WeekDays = append(rule.WeekDays, time.Weekday(day))
		}
	case recurrence.Monthly:
		rule.MonthDays = input.MonthDays
	}
	return rule
}
