package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDay is returned when a day code is outside Monday..Friday.
var ErrUnknownDay = errors.New("unknown day")

type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// NumberOfDays is the width of the weekly grid.
const NumberOfDays = 5

type dayInfo struct {
	code    string
	name    string
	english string
	field   func(*LessonRow) *string
}

// days is the single mapping between a Day, its codes and its LessonRow field.
var days = [NumberOfDays]dayInfo{
	Monday:    {"Pon", "Poniedziałek", "Monday", func(r *LessonRow) *string { return &r.Monday }},
	Tuesday:   {"Wto", "Wtorek", "Tuesday", func(r *LessonRow) *string { return &r.Tuesday }},
	Wednesday: {"Sro", "Środa", "Wednesday", func(r *LessonRow) *string { return &r.Wednesday }},
	Thursday:  {"Czw", "Czwartek", "Thursday", func(r *LessonRow) *string { return &r.Thursday }},
	Friday:    {"Pia", "Piątek", "Friday", func(r *LessonRow) *string { return &r.Friday }},
}

// Days lists the weekdays in grid order.
func Days() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// Valid reports whether d is one of Monday..Friday.
func (d Day) Valid() bool {
	return d >= Monday && d <= Friday
}

// Code returns the short day code, e.g. "Wto". Empty for invalid days.
func (d Day) Code() string {
	if !d.Valid() {
		return ""
	}
	return days[d].code
}

// Name returns the full display name, e.g. "Wtorek". Empty for invalid days.
func (d Day) Name() string {
	if !d.Valid() {
		return ""
	}
	return days[d].name
}

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return days[d].english
}

// ParseDay converts a short day code ("Pon".."Pia") or an English weekday
// name into a Day. Matching ignores case.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	for i, info := range days {
		if strings.EqualFold(s, info.code) || strings.EqualFold(s, info.english) {
			return Day(i), nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownDay, s)
}
