package model

import (
	"errors"
	"fmt"
)

// ErrInvalidSchedule is returned when a schedule does not hold exactly one row per slot.
var ErrInvalidSchedule = errors.New("invalid schedule")

// TimeSlotCount is the number of lesson slots in a day.
const TimeSlotCount = 11

// LessonTimes is the static time-label table. Labels are never persisted.
var LessonTimes = []string{
	"7:10 - 7:55", "8:00 - 8:45", "8:50 - 9:35", "9:40 - 10:25", "10:35 - 11:20",
	"11:30 - 12:15", "12:30 - 13:15", "13:25 - 14:10", "14:20 - 15:05",
	"15:10 - 15:55", "16:00 - 16:45",
}

type LessonRow struct {
	Number    int
	Time      string
	Monday    string
	Tuesday   string
	Wednesday string
	Thursday  string
	Friday    string
}

// ScheduleCSVRow is the persisted form of a LessonRow. Number and Time are
// implied by the line position.
type ScheduleCSVRow struct {
	Monday    string `csv:"monday"`
	Tuesday   string `csv:"tuesday"`
	Wednesday string `csv:"wednesday"`
	Thursday  string `csv:"thursday"`
	Friday    string `csv:"friday"`
}

// Get returns the raw value stored for day, or "" for an invalid day.
func (r *LessonRow) Get(day Day) string {
	if !day.Valid() {
		return ""
	}
	return *days[day].field(r)
}

// Set stores value for day. Returns false if day is invalid.
func (r *LessonRow) Set(day Day, value string) bool {
	if !day.Valid() {
		return false
	}
	*days[day].field(r) = value
	return true
}

// CSVRow returns the persisted day values of the row.
func (r *LessonRow) CSVRow() *ScheduleCSVRow {
	return &ScheduleCSVRow{
		Monday:    r.Monday,
		Tuesday:   r.Tuesday,
		Wednesday: r.Wednesday,
		Thursday:  r.Thursday,
		Friday:    r.Friday,
	}
}

// Schedule is the ordered list of lesson rows; index = row number - 1.
type Schedule struct {
	Rows []*LessonRow
}

/* NewSchedule creates an empty schedule with one row per time label. */
func NewSchedule(times []string) *Schedule {
	schedule := Schedule{Rows: make([]*LessonRow, len(times))}
	for i := range schedule.Rows {
		schedule.Rows[i] = &LessonRow{Number: i + 1, Time: times[i]}
	}
	return &schedule
}

// Row returns the 1-indexed row, or nil when row is out of range.
func (s *Schedule) Row(row int) *LessonRow {
	if s == nil || row < 1 || row > len(s.Rows) {
		return nil
	}
	return s.Rows[row-1]
}

// Cell returns the raw value at (row, day). Out-of-range rows and invalid
// days yield "".
func (s *Schedule) Cell(row int, day Day) string {
	r := s.Row(row)
	if r == nil {
		return ""
	}
	return r.Get(day)
}

// Clear resets every day value while keeping numbers and time labels.
func (s *Schedule) Clear() {
	for _, r := range s.Rows {
		for _, d := range Days() {
			r.Set(d, "")
		}
	}
}

// Validate checks that the schedule holds exactly TimeSlotCount rows numbered in order.
func (s *Schedule) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil schedule", ErrInvalidSchedule)
	}
	if len(s.Rows) != TimeSlotCount {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidSchedule, len(s.Rows), TimeSlotCount)
	}
	for i, r := range s.Rows {
		if r == nil {
			return fmt.Errorf("%w: row %d is nil", ErrInvalidSchedule, i+1)
		}
		if r.Number != i+1 {
			return fmt.Errorf("%w: row %d has number %d", ErrInvalidSchedule, i+1, r.Number)
		}
	}
	return nil
}

// Occupied counts cells holding a lesson.
func (s *Schedule) Occupied() int {
	count := 0
	for _, r := range s.Rows {
		for _, d := range Days() {
			if StateOf(r.Get(d)) == CellOccupied {
				count++
			}
		}
	}
	return count
}
