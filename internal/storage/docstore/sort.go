package docstore

import (
	"slices"
	"time"
)

// sortNewestFirst orders docs by their primary date, then by creation time,
// newest first.
func sortNewestFirst[T any](docs []*T, dates func(*T) (time.Time, time.Time)) {
	slices.SortStableFunc(docs, func(x, y *T) int {
		xDate, xCreated := dates(x)
		yDate, yCreated := dates(y)
		if c := yDate.Compare(xDate); c != 0 {
			return c
		}
		return yCreated.Compare(xCreated)
	})
}
