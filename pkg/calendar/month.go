package calendar

import "time"

// MonthCursor identifies the month a calendar view is positioned on.
// It is a plain value: navigation returns a new cursor instead of
// mutating shared state, and the grid is always re-derived from it.
type MonthCursor struct {
	Year  int
	Month time.Month
}

// CursorFor returns the cursor for the month containing t.
func CursorFor(t time.Time) MonthCursor {
	return MonthCursor{Year: t.Year(), Month: t.Month()}
}

// Next returns the cursor one month forward, rolling December into
// January of the following year.
func (c MonthCursor) Next() MonthCursor {
	if c.Month == time.December {
		return MonthCursor{Year: c.Year + 1, Month: time.January}
	}
	return MonthCursor{Year: c.Year, Month: c.Month + 1}
}

// Prev returns the cursor one month back, rolling January into December
// of the previous year.
func (c MonthCursor) Prev() MonthCursor {
	if c.Month == time.January {
		return MonthCursor{Year: c.Year - 1, Month: time.December}
	}
	return MonthCursor{Year: c.Year, Month: c.Month - 1}
}

// FirstWeekday returns the weekday of day 1 of the month.
func (c MonthCursor) FirstWeekday() time.Weekday {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// Days returns the number of days in the month, leap years included.
// Day 0 of the next month normalizes to the last day of this one.
func (c MonthCursor) Days() int {
	return time.Date(c.Year, c.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date returns the calendar date for the given day of the month.
func (c MonthCursor) Date(day int) time.Time {
	return time.Date(c.Year, c.Month, day, 0, 0, 0, 0, time.UTC)
}

// Cell is one position in a rendered month grid. Day 0 marks a leading
// blank used to align day 1 under its weekday column.
type Cell struct {
	Day      int  `json:"day"`
	Eligible bool `json:"eligible"`
}

// Grid is a month laid out as a Sunday-first sequence of cells.
type Grid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Cells []Cell     `json:"cells"`
}

// BuildGrid lays out the cursor's month: one blank cell per weekday
// preceding day 1, then one cell per day, flagged eligible when the day
// falls on one of the working weekdays. An empty working set yields a
// grid with no eligible days, which is a valid state, not an error.
func BuildGrid(c MonthCursor, working WeekdaySet) Grid {
	lead := int(c.FirstWeekday())
	days := c.Days()

	cells := make([]Cell, 0, lead+days)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{
			Day:      day,
			Eligible: IsEligible(c.Date(day), working),
		})
	}

	return Grid{Year: c.Year, Month: c.Month, Cells: cells}
}

// EligibleDays returns the day numbers of the grid's eligible cells.
func (g Grid) EligibleDays() []int {
	var days []int
	for _, cell := range g.Cells {
		if cell.Eligible {
			days = append(days, cell.Day)
		}
	}
	return days
}
