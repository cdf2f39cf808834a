// Package calendar models the desktop calendar widget: a month grid with
// navigation, a today marker and special dates that open a short note.
package calendar

import (
	"fmt"
	"time"
)

// SpecialDate marks a day with a note. Year 0 repeats every year.
type SpecialDate struct {
	Month time.Month
	Day   int
	Year  int
	Title string
	Note  string
}

// Matches reports whether d falls on year/month/day.
func (d SpecialDate) Matches(year int, month time.Month, day int) bool {
	return d.Month == month && d.Day == day && (d.Year == 0 || d.Year == year)
}

// DefaultSpecialDates are used when none are configured.
func DefaultSpecialDates() []SpecialDate {
	return []SpecialDate{
		{Month: time.February, Day: 14, Title: "Note", Note: "Dinner date. Somewhere with chili peanut noodles."},
		{Month: time.March, Day: 3, Year: 2026, Title: "Note", Note: "Happy anniversary."},
	}
}

// Week is seven days starting on Sunday; 0 is a blank cell.
type Week [7]int

// Calendar is the state of one calendar widget.
type Calendar struct {
	year     int
	month    time.Month
	today    time.Time
	specials []SpecialDate

	open    SpecialDate
	openDay int
}

// New returns a calendar showing the month containing today.
func New(today time.Time, specials []SpecialDate) *Calendar {
	return &Calendar{
		year:     today.Year(),
		month:    today.Month(),
		today:    today,
		specials: append([]SpecialDate(nil), specials...),
	}
}

// Month returns the displayed year and month.
func (c *Calendar) Month() (int, time.Month) { return c.year, c.month }

// Label is the heading, e.g. "February 2026".
func (c *Calendar) Label() string { return fmt.Sprintf("%s %d", c.month, c.year) }

// PrevMonth shows the previous month and closes any open note.
func (c *Calendar) PrevMonth() { c.shift(-1) }

// NextMonth shows the next month and closes any open note.
func (c *Calendar) NextMonth() { c.shift(1) }

func (c *Calendar) shift(delta int) {
	first := time.Date(c.year, c.month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	c.year, c.month = first.Year(), first.Month()
	c.CloseNote()
}

// DaysIn returns the number of days in the displayed month.
func (c *Calendar) DaysIn() int {
	return time.Date(c.year, c.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weeks lays the month out Sunday first, padding with blanks at both ends.
func (c *Calendar) Weeks() []Week {
	lead := int(time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	days := c.DaysIn()

	var weeks []Week
	var w Week
	col := lead
	for day := 1; day <= days; day++ {
		w[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, w)
			w, col = Week{}, 0
		}
	}
	if col > 0 {
		weeks = append(weeks, w)
	}
	return weeks
}

// IsToday reports whether day in the displayed month is today.
func (c *Calendar) IsToday(day int) bool {
	return day > 0 && c.today.Year() == c.year && c.today.Month() == c.month && c.today.Day() == day
}

// Special returns the special date for day in the displayed month.
func (c *Calendar) Special(day int) (SpecialDate, bool) {
	if day <= 0 {
		return SpecialDate{}, false
	}
	for _, d := range c.specials {
		if d.Matches(c.year, c.month, day) {
			return d, true
		}
	}
	return SpecialDate{}, false
}

// SelectDay handles a click on a day cell. A special day toggles its note;
// anything else closes the open note.
func (c *Calendar) SelectDay(day int) {
	d, ok := c.Special(day)
	if !ok {
		c.CloseNote()
		return
	}
	if c.openDay == day {
		c.CloseNote()
		return
	}
	c.open, c.openDay = d, day
}

// Note returns the open note.
func (c *Calendar) Note() (SpecialDate, bool) {
	return c.open, c.openDay > 0
}

// CloseNote hides the open note.
func (c *Calendar) CloseNote() {
	c.open, c.openDay = SpecialDate{}, 0
}

// SetToday moves the today marker, used when the clock rolls past midnight.
func (c *Calendar) SetToday(t time.Time) { c.today = t }
