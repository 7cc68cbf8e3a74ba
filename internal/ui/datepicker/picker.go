// ABOUTME: Date-picker state machine and month-grid generation
// ABOUTME: Pure state, no rendering; the console draws from Cells()

package datepicker

import (
	"time"

	"github.com/gidas-utn/gidas-admin/internal/dates"
)

// Cell is one slot of the 7-column month grid. Blank cells pad the first
// row to the month's starting weekday and the last row to a full week.
type Cell struct {
	Blank    bool
	Day      int
	Date     time.Time
	Disabled bool
}

// Picker is the date-selection state machine. While open it tracks a viewed
// month (navigable one month at a time, independent of the committed value)
// and a pending selection that only becomes the value on Confirm.
type Picker struct {
	open      bool
	committed time.Time
	pending   time.Time
	view      time.Time // first day of the viewed month
	min       time.Time // zero means unbounded
	max       time.Time
}

// New creates a closed picker with no committed value. min and max bound
// the selectable range (date-only, inclusive); either may be zero.
func New(min, max time.Time) *Picker {
	return &Picker{min: dates.StripTime(min), max: dates.StripTime(max)}
}

// IsOpen reports whether the popover is showing.
func (p *Picker) IsOpen() bool { return p.open }

// Value returns the committed date (zero while none is committed).
func (p *Picker) Value() time.Time { return p.committed }

// Pending returns the uncommitted candidate selection.
func (p *Picker) Pending() time.Time { return p.pending }

// Viewed returns the first day of the month currently shown.
func (p *Picker) Viewed() time.Time { return p.view }

// Open shows the popover. The pending selection restarts from the committed
// value, and the viewed month snaps to it (or to the current month when
// nothing is committed yet).
func (p *Picker) Open() {
	p.open = true
	p.pending = p.committed
	anchor := p.committed
	if anchor.IsZero() {
		anchor = time.Now()
	}
	p.view = monthOf(anchor)
}

// Toggle flips between open and closed, as the trigger input does.
func (p *Picker) Toggle() {
	if p.open {
		p.Cancel()
		return
	}
	p.Open()
}

// SetValue replaces the committed value from outside (loading a record into
// the form). The pending selection and viewed month follow it.
func (p *Picker) SetValue(t time.Time) {
	p.committed = dates.StripTime(t)
	p.pending = p.committed
	if !p.committed.IsZero() {
		p.view = monthOf(p.committed)
	}
}

// NextMonth advances the viewed month. The committed value is untouched.
func (p *Picker) NextMonth() {
	if p.open {
		p.view = p.view.AddDate(0, 1, 0)
	}
}

// PrevMonth rewinds the viewed month.
func (p *Picker) PrevMonth() {
	if p.open {
		p.view = p.view.AddDate(0, -1, 0)
	}
}

// Select stages a day as the pending selection. Disabled days are ignored.
func (p *Picker) Select(t time.Time) {
	if !p.open || p.disabled(dates.StripTime(t)) {
		return
	}
	p.pending = dates.StripTime(t)
}

// Confirm commits the pending selection and closes.
func (p *Picker) Confirm() {
	if !p.open {
		return
	}
	p.committed = p.pending
	p.open = false
}

// Cancel discards the pending selection and closes. Escape and clicks
// outside the popover route here too.
func (p *Picker) Cancel() {
	if !p.open {
		return
	}
	p.pending = p.committed
	p.open = false
}

// Escape closes the popover discarding the pending selection.
func (p *Picker) Escape() { p.Cancel() }

// ClickOutside closes the popover discarding the pending selection.
func (p *Picker) ClickOutside() { p.Cancel() }

// Cells returns the grid for the viewed month with per-day disabled state.
func (p *Picker) Cells() []Cell {
	cells := MonthGrid(p.view.Year(), p.view.Month())
	for i := range cells {
		if !cells[i].Blank {
			cells[i].Disabled = p.disabled(cells[i].Date)
		}
	}
	return cells
}

// disabled applies the date-only bounds; the bounds themselves stay
// selectable.
func (p *Picker) disabled(d time.Time) bool {
	if !p.min.IsZero() && d.Before(p.min) {
		return true
	}
	if !p.max.IsZero() && d.After(p.max) {
		return true
	}
	return false
}

// MonthGrid lays a month out in 7 columns: leading blanks up to the first
// day's weekday (Sunday = 0), the days 1..T in order, then trailing blanks
// to a multiple of 7.
func MonthGrid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	pad := int(first.Weekday())
	total := daysIn(year, month)

	cells := make([]Cell, 0, pad+total+6)
	for i := 0; i < pad; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for d := 1; d <= total; d++ {
		cells = append(cells, Cell{
			Day:  d,
			Date: time.Date(year, month, d, 0, 0, 0, 0, time.UTC),
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, Cell{Blank: true})
	}
	return cells
}

// monthOf returns the first day of t's month.
func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// daysIn returns the number of days in a month (day 0 of the next month).
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
