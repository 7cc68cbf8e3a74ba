package datepicker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGrid_LeadingAndTrailingBlanks(t *testing.T) {
	// March 2024 starts on a Friday (offset 5) and has 31 days:
	// 5 leading blanks + 31 days = 36 cells, padded to 42.
	cells := MonthGrid(2024, time.March)
	require.Len(t, cells, 42)

	for i := 0; i < 5; i++ {
		assert.True(t, cells[i].Blank, "cell %d should be a leading blank", i)
	}
	for d := 1; d <= 31; d++ {
		c := cells[4+d]
		assert.False(t, c.Blank)
		assert.Equal(t, d, c.Day)
	}
	for i := 36; i < 42; i++ {
		assert.True(t, cells[i].Blank, "cell %d should be a trailing blank", i)
	}
}

func TestMonthGrid_ExactWeeksNeedNoPadding(t *testing.T) {
	// February 2026 starts on a Sunday and has 28 days: exactly 4 rows.
	cells := MonthGrid(2026, time.February)
	require.Len(t, cells, 28)
	assert.False(t, cells[0].Blank)
	assert.Equal(t, 1, cells[0].Day)
	assert.Equal(t, 28, cells[27].Day)
}

func TestMonthGrid_AlwaysMultipleOfSeven(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		cells := MonthGrid(2025, m)
		assert.Zero(t, len(cells)%7, "month %s", m)
	}
}

func TestPicker_OpenInitializesPendingFromCommitted(t *testing.T) {
	p := New(time.Time{}, time.Time{})
	p.SetValue(day(2024, time.March, 5))

	p.Open()
	require.True(t, p.IsOpen())
	assert.Equal(t, day(2024, time.March, 5), p.Pending())
	assert.Equal(t, day(2024, time.March, 1), p.Viewed())
}

func TestPicker_ConfirmCommitsAndCloses(t *testing.T) {
	p := New(time.Time{}, time.Time{})
	p.SetValue(day(2024, time.March, 5))
	p.Open()

	p.Select(day(2024, time.March, 12))
	assert.Equal(t, day(2024, time.March, 5), p.Value(), "selection is pending until confirmed")

	p.Confirm()
	assert.False(t, p.IsOpen())
	assert.Equal(t, day(2024, time.March, 12), p.Value())
}

func TestPicker_CancelDiscardsPending(t *testing.T) {
	p := New(time.Time{}, time.Time{})
	p.SetValue(day(2024, time.March, 5))
	p.Open()
	p.Select(day(2024, time.March, 20))

	p.Cancel()
	assert.False(t, p.IsOpen())
	assert.Equal(t, day(2024, time.March, 5), p.Value())

	p.Open()
	assert.Equal(t, day(2024, time.March, 5), p.Pending(), "pending reverts to committed")
}

func TestPicker_EscapeAndOutsideClickBehaveLikeCancel(t *testing.T) {
	p := New(time.Time{}, time.Time{})
	p.SetValue(day(2024, time.March, 5))

	p.Open()
	p.Select(day(2024, time.March, 9))
	p.Escape()
	assert.Equal(t, day(2024, time.March, 5), p.Value())

	p.Open()
	p.Select(day(2024, time.March, 9))
	p.ClickOutside()
	assert.Equal(t, day(2024, time.March, 5), p.Value())
	assert.False(t, p.IsOpen())
}

func TestPicker_MonthNavigationLeavesValueAlone(t *testing.T) {
	p := New(time.Time{}, time.Time{})
	p.SetValue(day(2024, time.March, 5))
	p.Open()

	p.NextMonth()
	p.NextMonth()
	assert.Equal(t, day(2024, time.May, 1), p.Viewed())
	p.PrevMonth()
	assert.Equal(t, day(2024, time.April, 1), p.Viewed())
	assert.Equal(t, day(2024, time.March, 5), p.Value())

	// Reopening snaps the view back to the committed value's month.
	p.Cancel()
	p.Open()
	assert.Equal(t, day(2024, time.March, 1), p.Viewed())
}

func TestPicker_BoundsAreSelectable(t *testing.T) {
	p := New(day(2024, time.March, 10), day(2024, time.March, 20))
	p.Open()

	p.Select(day(2024, time.March, 10))
	assert.Equal(t, day(2024, time.March, 10), p.Pending(), "minimum itself is selectable")

	p.Select(day(2024, time.March, 20))
	assert.Equal(t, day(2024, time.March, 20), p.Pending(), "maximum itself is selectable")

	p.Select(day(2024, time.March, 9))
	assert.Equal(t, day(2024, time.March, 20), p.Pending(), "below minimum is ignored")

	p.Select(day(2024, time.March, 21))
	assert.Equal(t, day(2024, time.March, 20), p.Pending(), "above maximum is ignored")
}

func TestPicker_CellsMarkDisabledDays(t *testing.T) {
	p := New(day(2024, time.March, 10), day(2024, time.March, 20))
	p.SetValue(day(2024, time.March, 15))
	p.Open()

	for _, c := range p.Cells() {
		if c.Blank {
			continue
		}
		wantDisabled := c.Day < 10 || c.Day > 20
		assert.Equal(t, wantDisabled, c.Disabled, "day %d", c.Day)
	}
}

func TestPicker_BoundsIgnoreTimeOfDay(t *testing.T) {
	min := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC)
	p := New(min, time.Time{})
	p.Open()

	p.Select(day(2024, time.March, 10))
	assert.Equal(t, day(2024, time.March, 10), p.Pending(), "time-of-day on the bound is stripped")
}

func TestPicker_ToggleReopensAndCloses(t *testing.T) {
	p := New(time.Time{}, time.Time{})
	p.Toggle()
	assert.True(t, p.IsOpen())
	p.Toggle()
	assert.False(t, p.IsOpen())
}
