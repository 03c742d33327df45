package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/planlekcji/internal/csvio"
	"github.com/rhyrak/planlekcji/pkg/model"
)

type fakeSaver struct {
	saves int
	err   error
	last  [][]string
}

func (f *fakeSaver) Save(s *model.Schedule) error {
	f.saves++
	if f.err != nil {
		return f.err
	}
	f.last = f.last[:0]
	for _, r := range s.Rows {
		f.last = append(f.last, []string{r.Monday, r.Tuesday, r.Wednesday, r.Thursday, r.Friday})
	}
	return nil
}

func newController() (*Controller, *fakeSaver) {
	saver := &fakeSaver{}
	return New(model.NewSchedule(model.LessonTimes), saver, nil), saver
}

func TestApplyEditThenCellValue(t *testing.T) {
	c, saver := newController()
	day, err := model.ParseDay("Wto")
	require.NoError(t, err)
	row := c.Schedule().Row(3)
	row.Monday = "Polski"
	row.Friday = "WF"

	require.NoError(t, c.ApplyEdit(3, day, "Fizyka, 12"))
	assert.Equal(t, "Fizyka, 12", c.CellValue(3, day))
	assert.Equal(t, "Polski", row.Monday)
	assert.Equal(t, "", row.Wednesday)
	assert.Equal(t, "", row.Thursday)
	assert.Equal(t, "WF", row.Friday)
	assert.Equal(t, 1, saver.saves)
	assert.Equal(t, "Fizyka, 12", saver.last[2][1])
}

func TestApplyDelete(t *testing.T) {
	c, saver := newController()
	require.NoError(t, c.ApplyEdit(1, model.Monday, "Matematyka, 204"))

	require.NoError(t, c.ApplyDelete(1, model.Monday))
	assert.Equal(t, "", c.CellValue(1, model.Monday))
	require.NoError(t, c.ApplyDelete(1, model.Monday))
	assert.Equal(t, "", c.CellValue(1, model.Monday))
	assert.Equal(t, 3, saver.saves)
}

func TestCellValueOutOfRange(t *testing.T) {
	c, _ := newController()
	for _, row := range []int{-1, 0, 12, 100} {
		assert.Equal(t, "", c.CellValue(row, model.Monday), "row %d", row)
	}
	assert.Equal(t, "", c.CellValue(1, model.Day(7)))
}

func TestApplyRejectsUnknownTargets(t *testing.T) {
	c, saver := newController()

	err := c.ApplyEdit(12, model.Monday, "Fizyka")
	assert.ErrorIs(t, err, ErrRowOutOfRange)
	err = c.ApplyEdit(1, model.Day(-1), "Fizyka")
	assert.ErrorIs(t, err, model.ErrUnknownDay)
	err = c.ApplyDelete(0, model.Friday)
	assert.ErrorIs(t, err, ErrRowOutOfRange)
	assert.Zero(t, saver.saves)
}

func TestSaveFailureKeepsEdit(t *testing.T) {
	c, saver := newController()
	saver.err = errors.New("disk full")

	err := c.ApplyEdit(5, model.Thursday, "Chemia")
	require.Error(t, err)
	assert.ErrorIs(t, err, saver.err)
	assert.Equal(t, "Chemia", c.CellValue(5, model.Thursday))
}

func TestDisplayValue(t *testing.T) {
	c, _ := newController()
	text, state := c.DisplayValue(2, model.Friday)
	assert.Equal(t, "", text)
	assert.Equal(t, model.CellEmpty, state)

	require.NoError(t, c.ApplyEdit(2, model.Friday, "Biologia, 7"))
	text, state = c.DisplayValue(2, model.Friday)
	assert.Equal(t, "Biologia\ns. 7", text)
	assert.Equal(t, model.CellOccupied, state)
}

func TestPrefillAndTitle(t *testing.T) {
	c, _ := newController()
	require.NoError(t, c.ApplyEdit(4, model.Wednesday, "Geografia, 3, parter"))

	subject, room := c.Prefill(4, model.Wednesday)
	assert.Equal(t, "Geografia", subject)
	assert.Equal(t, "3, parter", room)
	assert.Equal(t, "Środa, lekcja nr 4", c.Title(4, model.Wednesday))
}

func TestHandleEvents(t *testing.T) {
	c, saver := newController()

	require.NoError(t, c.Handle(CellEvent{Row: 6, Day: model.Tuesday, Kind: EditConfirmed, Subject: " Informatyka ", Room: " 101 "}))
	assert.Equal(t, "Informatyka, 101", c.CellValue(6, model.Tuesday))

	require.NoError(t, c.Handle(CellEvent{Row: 6, Day: model.Tuesday, Kind: Cancelled, Subject: "Other"}))
	assert.Equal(t, "Informatyka, 101", c.CellValue(6, model.Tuesday))
	assert.Equal(t, 1, saver.saves)

	require.NoError(t, c.Handle(CellEvent{Row: 6, Day: model.Tuesday, Kind: DeleteRequested}))
	assert.Equal(t, "", c.CellValue(6, model.Tuesday))
	assert.Equal(t, 2, saver.saves)
}

func TestEditPersistsThroughStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan_lekcji.txt")
	store := csvio.NewStore(path, model.LessonTimes, nil)
	schedule, err := store.Load()
	require.NoError(t, err)

	c := New(schedule, store, nil)
	require.NoError(t, c.ApplyEdit(3, model.Tuesday, model.ParseLessonValue("Fizyka", "12")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, model.TimeSlotCount)
	assert.Equal(t, ";Fizyka, 12;;;", lines[2])

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Fizyka, 12", reloaded.Cell(3, model.Tuesday))
}

func TestApplyEditTrimsValue(t *testing.T) {
	c, saver := newController()

	require.NoError(t, c.ApplyEdit(7, model.Monday, "  Muzyka, 3 \t"))
	assert.Equal(t, "Muzyka, 3", c.CellValue(7, model.Monday))
	assert.Equal(t, "Muzyka, 3", saver.last[6][0])
}
