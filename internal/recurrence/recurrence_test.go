package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return Day(d)
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

func formatted(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(time.DateOnly)
	}
	return out
}

// -- daily --

func TestExpand_DailyWithEnd(t *testing.T) {
	dates, err := Expand(Rule{Frequency: Daily, Start: date("2024-01-01"), End: datePtr("2024-01-05")})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}, formatted(dates))
}

func TestExpand_DailyWithoutEndIsCapped(t *testing.T) {
	dates, err := Expand(Rule{Frequency: Daily, Start: date("2024-01-01")})
	require.NoError(t, err)

	assert.Len(t, dates, DefaultLimit)
	assert.Equal(t, "2024-01-30", dates[len(dates)-1].Format(time.DateOnly))
}

func TestExpand_DailyLongRangeCappedAtBoundedLimit(t *testing.T) {
	dates, err := Expand(Rule{Frequency: Daily, Start: date("2024-01-01"), End: datePtr("2026-01-01")})
	require.NoError(t, err)

	assert.Len(t, dates, BoundedLimit)
}

// -- weekly / biweekly --

func TestExpand_WeeklySelectedDays(t *testing.T) {
	dates, err := Expand(Rule{
		Frequency: Weekly,
		Start:     date("2024-01-01"),
		End:       datePtr("2024-01-15"),
		WeekDays:  []time.Weekday{time.Monday, time.Wednesday},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-01", "2024-01-03", "2024-01-08", "2024-01-10", "2024-01-15"}, formatted(dates))
	for _, d := range dates {
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
}

func TestExpand_BiweeklySkipsOddWeeks(t *testing.T) {
	dates, err := Expand(Rule{
		Frequency: Biweekly,
		Start:     date("2024-01-01"),
		End:       datePtr("2024-01-15"),
		WeekDays:  []time.Weekday{time.Monday, time.Wednesday},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-01", "2024-01-03", "2024-01-15"}, formatted(dates))
}

func TestExpand_WeeksStartOnSunday(t *testing.T) {
	// Saturday start: the next day already belongs to week 1, the Sunday
	// after that opens week 2.
	dates, err := Expand(Rule{
		Frequency: Biweekly,
		Start:     date("2024-01-06"),
		End:       datePtr("2024-01-21"),
		WeekDays:  []time.Weekday{time.Saturday, time.Sunday},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-06", "2024-01-14", "2024-01-20"}, formatted(dates))
}

func TestExpand_WeeklyWithoutDaysRepeatsStartWeekday(t *testing.T) {
	dates, err := Expand(Rule{Frequency: Weekly, Start: date("2024-01-03"), End: datePtr("2024-01-31")})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-03", "2024-01-10", "2024-01-17", "2024-01-24", "2024-01-31"}, formatted(dates))
}

func TestExpand_BiweeklyWithoutDaysNoEnd(t *testing.T) {
	dates, err := Expand(Rule{Frequency: Biweekly, Start: date("2024-01-03")})
	require.NoError(t, err)

	require.Len(t, dates, DefaultLimit)
	assert.Equal(t, 14*24*time.Hour, dates[1].Sub(dates[0]))
}

// -- monthly --

func TestExpand_MonthlySelectedDaysSkipsShortMonths(t *testing.T) {
	dates, err := Expand(Rule{
		Frequency: Monthly,
		Start:     date("2024-01-15"),
		MonthDays: []int{31, 1},
	})
	require.NoError(t, err)

	require.Len(t, dates, DefaultLimit)
	assert.Equal(t, []string{"2024-01-31", "2024-02-01", "2024-03-01", "2024-03-31", "2024-04-01", "2024-05-01", "2024-05-31"}, formatted(dates[:7]))
	for _, d := range dates {
		assert.False(t, d.Before(date("2024-01-15")))
		assert.Contains(t, []int{1, 31}, d.Day())
	}
}

func TestExpand_MonthlySelectedDaysRespectsEnd(t *testing.T) {
	dates, err := Expand(Rule{
		Frequency: Monthly,
		Start:     date("2024-01-01"),
		End:       datePtr("2024-03-10"),
		MonthDays: []int{5, 20},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-05", "2024-01-20", "2024-02-05", "2024-02-20", "2024-03-05"}, formatted(dates))
}

func TestExpand_MonthlySameDayClampsToMonthEnd(t *testing.T) {
	dates, err := Expand(Rule{Frequency: Monthly, Start: date("2024-01-31"), End: datePtr("2024-05-31")})
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30", "2024-05-31"}, formatted(dates))
}

// -- validation and iteration --

func TestExpand_Invalid(t *testing.T) {
	_, err := Expand(Rule{Frequency: "yearly", Start: date("2024-01-01")})
	assert.Error(t, err)

	_, err = Expand(Rule{Frequency: Daily, Start: date("2024-01-10"), End: datePtr("2024-01-01")})
	assert.Error(t, err)

	_, err = Expand(Rule{Frequency: Monthly, Start: date("2024-01-10"), MonthDays: []int{32}})
	assert.Error(t, err)

	_, err = Expand(Rule{Frequency: Daily})
	assert.Error(t, err)
}

func TestDates_StopsWhenConsumerStops(t *testing.T) {
	var got []time.Time
	for d := range Dates(Rule{Frequency: Daily, Start: date("2024-01-01")}) {
		got = append(got, d)
		if len(got) == 3 {
			break
		}
	}
	assert.Len(t, got, 3)
}

func TestDay_NormalizesToNoonUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	d := Day(time.Date(2024, 3, 10, 23, 30, 0, 0, loc))

	assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), d)
}
