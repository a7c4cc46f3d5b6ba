package actions

import (
	"fmt"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// SeriesScope selects how far an edit or delete on a series instance reaches.
type SeriesScope string

const (
	ScopeOnlyThis      SeriesScope = "only-this"
	ScopeThisAndFuture SeriesScope = "this-and-future"
)

// ParseSeriesScope defaults to ScopeOnlyThis.
func ParseSeriesScope(s string) (SeriesScope, error) {
	switch scope := SeriesScope(s); scope {
	case "":
		return ScopeOnlyThis, nil
	case ScopeOnlyThis, ScopeThisAndFuture:
		return scope, nil
	}
	return "", fmt.Errorf("unknown scope %q", s)
}

// SameSeries reports whether candidate belongs to target's series. Tasks with
// a series id match on it; older documents without one match on title and
// times, provided both are series members.
func SameSeries(target, candidate *table.Task) bool {
	if target.SeriesID.Valid {
		return candidate.SeriesID.Valid && candidate.SeriesID.UUID == target.SeriesID.UUID
	}
	return !candidate.SeriesID.Valid &&
		candidate.IsSeriesMember() &&
		candidate.Title == target.Title &&
		candidate.StartTime == target.StartTime &&
		candidate.EndTime == target.EndTime
}

// futureSiblings returns the tasks of target's series dated on or after it,
// target included.
func futureSiblings(target *table.Task, tasks []*table.Task) []*table.Task {
	var out []*table.Task
	for _, task := range tasks {
		if task.ID == target.ID {
			out = append(out, task)
			continue
		}
		if !target.IsSeriesMember() && !target.SeriesID.Valid {
			continue
		}
		if SameSeries(target, task) && !task.Date.Before(target.Date) {
			out = append(out, task)
		}
	}
	return out
}
