/*
Package calendar builds the fixed 42-cell month grid used for month-view
rendering.

PURPOSE:
  A month view is always 6 rows x 7 columns, Monday first. The leading row
  is padded with trailing days of the previous month and the remainder with
  leading days of the next month, so the output is always exactly 42
  contiguous dates. Each cell carries the schedule items whose date matches
  it, after caller-supplied filters are applied.

GUARANTEES:
  - len(grid) == GridSize (42)
  - dates strictly increase by one day across the array, no duplicates
  - IsToday is set on exactly the cell matching today's calendar date
*/
package calendar

import "time"

// GridSize is the fixed number of cells in a month view: 6 rows of 7 days.
const GridSize = 42

// DateKey is a calendar date in YYYY-MM-DD form, used to bucket items.
type DateKey string

// Key returns the DateKey for a timestamp, ignoring time-of-day.
func Key(t time.Time) DateKey {
	return DateKey(t.Format("2006-01-02"))
}

// Membership tags a cell with which month it belongs to relative to the
// grid's target month.
type Membership string

const (
	PreviousMonth Membership = "previous"
	CurrentMonth  Membership = "current"
	NextMonth     Membership = "next"
)

// Item is a schedule entry bucketed into a day cell.
type Item struct {
	ID     string
	Kind   string
	Status string
	Label  string
}

// FilterFunc decides whether an item appears in the grid. Filters run
// before bucketing.
type FilterFunc func(Item) bool

// KindIs keeps only items of the given kind.
func KindIs(kind string) FilterFunc {
	return func(it Item) bool { return it.Kind == kind }
}

// StatusIs keeps only items with the given status.
func StatusIs(status string) FilterFunc {
	return func(it Item) bool { return it.Status == status }
}

// Day is a single cell of the month grid.
type Day struct {
	Date       time.Time
	Key        DateKey
	Membership Membership
	IsToday    bool
	Items      []Item
}

// BuildMonthGrid produces the 42-cell grid for the given month. Monday is
// the first column. Items are looked up by date key after filters are
// applied; today's time-of-day is ignored.
func BuildMonthGrid(year int, month time.Month, itemsByDate map[DateKey][]Item, today time.Time, filters ...FilterFunc) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Monday-indexed weekday: Monday=0 ... Sunday=6
	lead := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -lead)

	todayKey := Key(today)

	grid := make([]Day, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		date := start.AddDate(0, 0, i)
		key := Key(date)

		grid = append(grid, Day{
			Date:       date,
			Key:        key,
			Membership: membership(date, year, month),
			IsToday:    key == todayKey,
			Items:      applyFilters(itemsByDate[key], filters),
		})
	}
	return grid
}

func membership(date time.Time, year int, month time.Month) Membership {
	y, m := date.Year(), date.Month()
	switch {
	case y == year && m == month:
		return CurrentMonth
	case y < year || (y == year && m < month):
		return PreviousMonth
	default:
		return NextMonth
	}
}

func applyFilters(items []Item, filters []FilterFunc) []Item {
	if len(items) == 0 {
		return nil
	}
	if len(filters) == 0 {
		out := make([]Item, len(items))
		copy(out, items)
		return out
	}

	var out []Item
	for _, it := range items {
		keep := true
		for _, f := range filters {
			if !f(it) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, it)
		}
	}
	return out
}
