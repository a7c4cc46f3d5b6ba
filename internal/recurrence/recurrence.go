// Package recurrence expands a recurrence rule into the calendar days of a
// task series.
package recurrence

import (
	"fmt"
	"iter"
	"slices"
	"time"
)

type Frequency string

const (
	Daily    Frequency = "daily"
	Weekly   Frequency = "weekly"
	Biweekly Frequency = "biweekly"
	Monthly  Frequency = "monthly"
)

const (
	// DefaultLimit caps a series without an end date.
	DefaultLimit = 30
	// BoundedLimit caps a series with an end date.
	BoundedLimit = 365

	maxWeekdayScanDays = 730
	maxMonthScan       = 365
)

// ParseFrequency validates a frequency name.
func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(s); f {
	case Daily, Weekly, Biweekly, Monthly:
		return f, nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// Rule describes when a series repeats. Start is the first candidate day and
// End, when set, the last one (inclusive).
type Rule struct {
	Frequency Frequency
	Start     time.Time
	End       *time.Time
	WeekDays  []time.Weekday
	MonthDays []int
}

func (r Rule) Validate() error {
	if _, err := ParseFrequency(string(r.Frequency)); err != nil {
		return err
	}
	if r.Start.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if r.End != nil && Day(*r.End).Before(Day(r.Start)) {
		return fmt.Errorf("end date %s is before start date %s", Day(*r.End).Format(time.DateOnly), Day(r.Start).Format(time.DateOnly))
	}
	for _, wd := range r.WeekDays {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("invalid weekday %d", wd)
		}
	}
	for _, md := range r.MonthDays {
		if md < 1 || md > 31 {
			return fmt.Errorf("invalid day of month %d", md)
		}
	}
	return nil
}

// Limit is the maximum number of dates the rule produces.
func (r Rule) Limit() int {
	if r.End != nil {
		return BoundedLimit
	}
	return DefaultLimit
}

// Expand validates the rule and returns every date it produces.
func Expand(r Rule) ([]time.Time, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return slices.Collect(Dates(r)), nil
}

// Dates lazily yields the days of the series in ascending order, each at
// 12:00 UTC. The rule is assumed valid.
func Dates(r Rule) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		start := Day(r.Start)
		var end time.Time
		if r.End != nil {
			end = Day(*r.End)
		}
		within := func(d time.Time) bool {
			return r.End == nil || !d.After(end)
		}

		s := &series{limit: r.Limit(), yield: yield}

		switch r.Frequency {
		case Daily:
			s.everyNDays(start, 1, within)
		case Weekly, Biweekly:
			weeks := 1
			if r.Frequency == Biweekly {
				weeks = 2
			}
			if len(r.WeekDays) == 0 {
				s.everyNDays(start, 7*weeks, within)
				return
			}
			s.selectedWeekdays(start, weeks, r.WeekDays, within)
		case Monthly:
			if len(r.MonthDays) == 0 {
				s.sameDayEachMonth(start, within)
				return
			}
			s.selectedMonthDays(start, r.MonthDays, within)
		}
	}
}

type series struct {
	limit   int
	emitted int
	yield   func(time.Time) bool
}

// emit yields d and reports whether the walk should go on.
func (s *series) emit(d time.Time) bool {
	s.emitted++
	return s.yield(d) && s.emitted < s.limit
}

func (s *series) everyNDays(start time.Time, n int, within func(time.Time) bool) {
	for d := start; within(d); d = d.AddDate(0, 0, n) {
		if !s.emit(d) {
			return
		}
	}
}

// selectedWeekdays walks day by day and keeps the selected weekdays of every
// n-th week, weeks starting on Sunday and counted from the start's week.
func (s *series) selectedWeekdays(start time.Time, n int, weekdays []time.Weekday, within func(time.Time) bool) {
	firstWeek := sunday(start)
	for i := 0; i < maxWeekdayScanDays; i++ {
		d := start.AddDate(0, 0, i)
		if !within(d) {
			return
		}
		week := daysBetween(firstWeek, sunday(d)) / 7
		if week%n != 0 || !slices.Contains(weekdays, d.Weekday()) {
			continue
		}
		if !s.emit(d) {
			return
		}
	}
}

// selectedMonthDays emits the selected days of every month from the start
// month on. Days past a month's length are skipped for that month.
func (s *series) selectedMonthDays(start time.Time, monthDays []int, within func(time.Time) bool) {
	days := slices.Clone(monthDays)
	slices.Sort(days)
	days = slices.Compact(days)

	first := time.Date(start.Year(), start.Month(), 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < maxMonthScan; i++ {
		month := first.AddDate(0, i, 0)
		last := daysIn(month)
		for _, day := range days {
			if day > last {
				continue
			}
			d := time.Date(month.Year(), month.Month(), day, 12, 0, 0, 0, time.UTC)
			if d.Before(start) {
				continue
			}
			if !within(d) {
				return
			}
			if !s.emit(d) {
				return
			}
		}
	}
}

// sameDayEachMonth keeps the start's day of month, clamped to the last day of
// shorter months.
func (s *series) sameDayEachMonth(start time.Time, within func(time.Time) bool) {
	for i := 0; ; i++ {
		first := time.Date(start.Year(), start.Month()+time.Month(i), 1, 12, 0, 0, 0, time.UTC)
		day := min(start.Day(), daysIn(first))
		d := time.Date(first.Year(), first.Month(), day, 12, 0, 0, 0, time.UTC)
		if !within(d) {
			return
		}
		if !s.emit(d) {
			return
		}
	}
}

// Day returns t's calendar day at 12:00 UTC. Noon keeps the day stable when
// clients render it in any timezone.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func sunday(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours()) / 24
}

func daysIn(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 12, 0, 0, 0, time.UTC).Day()
}
