package kernel

import (
	"fmt"
	"time"

	"lunchbox/internal/pkg/errs"
	"lunchbox/internal/pkg/guard"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date must be created via NewDate, ParseDate or DateOf")

// Weekday numbers the days of the week the ISO way: 1 is Monday, 7 is Sunday.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// NewWeekday validates n against [Monday, Sunday].
func NewWeekday(n int) (Weekday, error) {
	w := Weekday(n)
	if err := w.Validate(); err != nil {
		return 0, err
	}
	return w, nil
}

func (w Weekday) Validate() error {
	if w < Monday || w > Sunday {
		return errs.NewValueIsOutOfRangeError("weekday", int(w), int(Monday), int(Sunday))
	}
	return nil
}

func (w Weekday) String() string {
	if w.Validate() != nil {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	// time.Weekday counts from Sunday = 0.
	return time.Weekday(int(w) % 7).String()
}

// Date is a calendar date without time of day or zone. It is comparable and
// safe to use as a map key.
type Date struct {
	year  int
	month time.Month
	day   int
	guard guard.ConstructorGuard
}

// NewDate rejects dates that do not exist, such as February 30.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date", fmt.Errorf("%04d-%02d-%02d does not exist", year, int(month), day))
	}
	return Date{year: year, month: month, day: day, guard: guard.NewConstructorGuard()}, nil
}

// ParseDate parses the YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateOf(t), nil
}

// DateOf takes the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d, guard: guard.NewConstructorGuard()}
}

func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

func (d Date) Year() int {
	return d.year
}

func (d Date) Month() time.Month {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

// Weekday returns the ISO weekday of the date.
func (d Date) Weekday() Weekday {
	wd := d.Time().Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsEqual(other Date) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}
