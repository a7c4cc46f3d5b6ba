package service

import (
	"strings"
	"time"
)

// MonthLayout formats the month filter.
const MonthLayout = "2006-01"

func matchesMonth(date time.Time, month string) bool {
	return month == "" || date.Format(MonthLayout) == month
}

// matchesSearch reports whether any field contains search, ignoring case.
func matchesSearch(search string, fields ...string) bool {
	search = strings.TrimSpace(strings.ToLower(search))
	if search == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
