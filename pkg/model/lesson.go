package model

import "strings"

// CellState is the observable state of a grid cell.
type CellState int

const (
	CellEmpty CellState = iota
	CellOccupied
)

func (c CellState) String() string {
	if c == CellOccupied {
		return "occupied"
	}
	return "empty"
}

// StateOf returns CellOccupied when raw holds any non-blank text.
func StateOf(raw string) CellState {
	if strings.TrimSpace(raw) == "" {
		return CellEmpty
	}
	return CellOccupied
}

// RoomPrefix precedes the room number on the second display line.
const RoomPrefix = "s. "

// Characters that would break the line-per-row file layout.
var valueSanitizer = strings.NewReplacer(";", "_", "\r\n", " ", "\r", " ", "\n", " ")

// SplitLessonValue splits a raw value on its first comma into trimmed subject and room.
func SplitLessonValue(raw string) (subject, room string) {
	if strings.TrimSpace(raw) == "" {
		return "", ""
	}
	subject, room, _ = strings.Cut(raw, ",")
	return strings.TrimSpace(subject), strings.TrimSpace(room)
}

// FormatLessonDisplay renders a raw value as "Subject" or "Subject\ns. Room".
func FormatLessonDisplay(raw string) string {
	subject, room := SplitLessonValue(raw)
	if room == "" {
		return subject
	}
	return subject + "\n" + RoomPrefix + room
}

// ParseLessonValue encodes an edited subject and room into a raw value.
// Semicolons and line breaks are replaced so the value fits on one line of
// the schedule file.
func ParseLessonValue(subject, room string) string {
	subject = strings.TrimSpace(valueSanitizer.Replace(subject))
	room = strings.TrimSpace(valueSanitizer.Replace(room))
	if room == "" {
		return subject
	}
	return subject + ", " + room
}
