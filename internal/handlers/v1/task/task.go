// Package task serves the daily planner: single tasks, recurring series and
// the per-task timer.
package task

import (
	"time"

	"github.com/carson-networks/budget-planner/internal/handlers/v1/params"
	"github.com/carson-networks/budget-planner/internal/recurrence"
	"github.com/carson-networks/budget-planner/internal/service"
)

// Task is the API response model for a task.
type Task struct {
	ID              string `json:"id" doc:"Task UUID"`
	SeriesID        string `json:"seriesId,omitempty" doc:"Shared by every instance of a recurring series"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Date            string `json:"date" doc:"Day of the task (YYYY-MM-DD)"`
	StartTime       string `json:"startTime,omitempty"`
	EndTime         string `json:"endTime,omitempty"`
	Icon            string `json:"icon,omitempty"`
	Color           string `json:"color,omitempty"`
	Recurring       bool   `json:"recurring"`
	Frequency       string `json:"frequency,omitempty"`
	EndDate         string `json:"endDate,omitempty"`
	WeekDays        []int  `json:"weekDays,omitempty"`
	MonthDays       []int  `json:"monthDays,omitempty"`
	ParentRecurring bool   `json:"parentRecurring"`
	Status          string `json:"status" doc:"pending, in-progress, completed or incomplete"`
	ElapsedTime     int64  `json:"elapsedTime" doc:"Seconds worked so far"`
	StartedAt       string `json:"startedAt,omitempty"`
	CompletedAt     string `json:"completedAt,omitempty"`
}

// TaskBody is the request body for creating or editing a task.
type TaskBody struct {
	Title       string `json:"title" minLength:"1"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date" format:"date" doc:"Day of the task, first day of a series (YYYY-MM-DD)"`
	StartTime   string `json:"startTime,omitempty" doc:"'hh:mm AM/PM' or 'HH:MM'"`
	EndTime     string `json:"endTime,omitempty" doc:"'hh:mm AM/PM' or 'HH:MM'"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	Recurring   bool   `json:"recurring,omitempty"`
	Frequency   string `json:"frequency,omitempty" enum:"daily,weekly,biweekly,monthly"`
	EndDate     string `json:"endDate,omitempty" format:"date" doc:"Last day of the series (inclusive)"`
	WeekDays    []int  `json:"weekDays,omitempty" doc:"Weekdays for weekly/biweekly series, 0=Sunday"`
	MonthDays   []int  `json:"monthDays,omitempty" doc:"Days of month for monthly series"`
}

func parseTaskBody(body TaskBody) (service.TaskInput, error) {
	date, err := params.Date("date", body.Date)
	if err != nil {
		return service.TaskInput{}, err
	}
	endDate, err := params.OptionalDate("endDate", body.EndDate)
	if err != nil {
		return service.TaskInput{}, err
	}
	return service.TaskInput{
		Title:       body.Title,
		Description: body.Description,
		Date:        date,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		Icon:        body.Icon,
		Color:       body.Color,
		Recurring:   body.Recurring,
		Frequency:   recurrence.Frequency(body.Frequency),
		EndDate:     endDate,
		WeekDays:    body.WeekDays,
		MonthDays:   body.MonthDays,
	}, nil
}

func fromService(task service.Task) Task {
	out := Task{
		ID:              task.ID.String(),
		Title:           task.Title,
		Description:     task.Description,
		Date:            params.FormatDate(task.Date),
		StartTime:       task.StartTime,
		EndTime:         task.EndTime,
		Icon:            task.Icon,
		Color:           task.Color,
		Recurring:       task.Recurring,
		Frequency:       string(task.Frequency),
		WeekDays:        task.WeekDays,
		MonthDays:       task.MonthDays,
		ParentRecurring: task.ParentRecurring,
		Status:          string(task.Status),
		ElapsedTime:     task.ElapsedTime,
	}
	if task.SeriesID.Valid {
		out.SeriesID = task.SeriesID.UUID.String()
	}
	if task.EndDate != nil {
		out.EndDate = params.FormatDate(*task.EndDate)
	}
	if task.StartedAt != nil {
		out.StartedAt = task.StartedAt.Format(time.RFC3339)
	}
	if task.CompletedAt != nil {
		out.CompletedAt = task.CompletedAt.Format(time.RFC3339)
	}
	return out
}

func fromServiceList(tasks []service.Task) []Task {
	out := make([]Task, len(tasks))
	for i, task := range tasks {
		out[i] = fromService(task)
	}
	return out
}
