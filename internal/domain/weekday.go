package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Weekday is the lowercase canonical name of a day of the week.
// Workouts are grouped and displayed by it.
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// ErrInvalidWeekday is returned when a string is not one of the seven day names.
var ErrInvalidWeekday = errors.New("invalid weekday")

// Weekdays lists the canonical days in display order (Sunday first, like time.Weekday).
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseWeekday accepts any casing and surrounding whitespace ("Monday", " MONDAY ").
func ParseWeekday(s string) (Weekday, error) {
	d := Weekday(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
	}
	return d, nil
}

// Valid reports whether d is one of the canonical values.
func (d Weekday) Valid() bool {
	for _, w := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// Index is the position of d in Weekdays, or -1.
func (d Weekday) Index() int {
	for i, w := range Weekdays {
		if d == w {
			return i
		}
	}
	return -1
}

// WeekdayOf maps a time.Weekday to its canonical name.
func WeekdayOf(wd time.Weekday) Weekday {
	return Weekdays[int(wd)%len(Weekdays)]
}
