package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	cases := []struct {
		in   string
		want Day
	}{
		{"Pon", Monday},
		{"wto", Tuesday},
		{"SRO", Wednesday},
		{"Czw", Thursday},
		{" Pia ", Friday},
		{"friday", Friday},
	}
	for _, c := range cases {
		got, err := ParseDay(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	for _, bad := range []string{"", "Sob", "Nie", "Saturday", "Po"} {
		_, err := ParseDay(bad)
		assert.ErrorIs(t, err, ErrUnknownDay, bad)
	}
}

func TestDayNames(t *testing.T) {
	codes := []string{"Pon", "Wto", "Sro", "Czw", "Pia"}
	names := []string{"Poniedziałek", "Wtorek", "Środa", "Czwartek", "Piątek"}
	for i, d := range Days() {
		assert.Equal(t, codes[i], d.Code())
		assert.Equal(t, names[i], d.Name())
	}
	assert.False(t, Day(5).Valid())
	assert.Equal(t, "", Day(5).Code())
	assert.Equal(t, "", Day(-1).Name())
	assert.Equal(t, "Day(5)", Day(5).String())
}

func TestLessonRowAccessors(t *testing.T) {
	r := &LessonRow{Number: 1}
	for i, d := range Days() {
		assert.True(t, r.Set(d, d.Code()))
		assert.Equal(t, codesOf(r)[i], d.Code())
	}
	assert.False(t, r.Set(Day(9), "x"))
	assert.Equal(t, "", r.Get(Day(9)))
}

func codesOf(r *LessonRow) []string {
	return []string{r.Monday, r.Tuesday, r.Wednesday, r.Thursday, r.Friday}
}

func TestFormatLessonDisplay(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Fizyka", "Fizyka"},
		{"Matematyka, 204", "Matematyka\ns. 204"},
		{"Matematyka,204", "Matematyka\ns. 204"},
		{"Matematyka, ", "Matematyka"},
		{"Geografia, 3, parter", "Geografia\ns. 3, parter"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatLessonDisplay(c.raw), "%q", c.raw)
	}
}

func TestParseLessonValue(t *testing.T) {
	assert.Equal(t, "Fizyka, 12", ParseLessonValue(" Fizyka ", " 12 "))
	assert.Equal(t, "Fizyka", ParseLessonValue("Fizyka", "   "))
	assert.Equal(t, "", ParseLessonValue("", ""))
	assert.Equal(t, "WF_sala, 1 2", ParseLessonValue("WF;sala", "1\n2"))
}

func TestParseFormatRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"Matematyka", "204"},
		{"Język polski", "12a"},
		{"Religia", ""},
		{"Wychowanie fizyczne", "sala gimnastyczna"},
	}
	for _, p := range pairs {
		raw := ParseLessonValue(p[0], p[1])
		subject, room := SplitLessonValue(raw)
		assert.Equal(t, p[0], subject)
		assert.Equal(t, p[1], room)
		if p[1] == "" {
			assert.Equal(t, p[0], FormatLessonDisplay(raw))
		} else {
			assert.Equal(t, p[0]+"\n"+RoomPrefix+p[1], FormatLessonDisplay(raw))
		}
	}
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, CellEmpty, StateOf(""))
	assert.Equal(t, CellEmpty, StateOf(" \t"))
	assert.Equal(t, CellOccupied, StateOf("Fizyka"))
	assert.Equal(t, "occupied", CellOccupied.String())
}

func TestNewScheduleAndValidate(t *testing.T) {
	s := NewSchedule(LessonTimes)
	require.NoError(t, s.Validate())
	require.Len(t, s.Rows, TimeSlotCount)
	assert.Equal(t, "16:00 - 16:45", s.Row(11).Time)
	assert.Nil(t, s.Row(0))
	assert.Nil(t, s.Row(12))

	s.Rows[3].Monday = "Fizyka"
	assert.Equal(t, "Fizyka", s.Cell(4, Monday))
	assert.Equal(t, 1, s.Occupied())
	s.Clear()
	assert.Equal(t, 0, s.Occupied())
	assert.Equal(t, 4, s.Rows[3].Number)

	assert.ErrorIs(t, NewSchedule(LessonTimes[:10]).Validate(), ErrInvalidSchedule)
	s.Rows[0], s.Rows[1] = s.Rows[1], s.Rows[0]
	assert.ErrorIs(t, s.Validate(), ErrInvalidSchedule)
	var nilSchedule *Schedule
	assert.ErrorIs(t, nilSchedule.Validate(), ErrInvalidSchedule)
}
