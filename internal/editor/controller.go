package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rhyrak/planlekcji/internal/logger"
	"github.com/rhyrak/planlekcji/pkg/model"
)

// ErrRowOutOfRange is returned when an edit targets a row outside 1..11.
var ErrRowOutOfRange = errors.New("row out of range")

// Saver persists the whole schedule.
type Saver interface {
	Save(schedule *model.Schedule) error
}

// EventKind is how an edit interaction ended.
type EventKind int

const (
	EditConfirmed EventKind = iota
	DeleteRequested
	Cancelled
)

func (k EventKind) String() string {
	switch k {
	case EditConfirmed:
		return "edit"
	case DeleteRequested:
		return "delete"
	case Cancelled:
		return "cancel"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// CellEvent is emitted by the edit interaction for one grid cell.
type CellEvent struct {
	Row     int
	Day     model.Day
	Kind    EventKind
	Subject string
	Room    string
}

// Controller applies cell edits to a schedule and persists every change.
type Controller struct {
	schedule *model.Schedule
	store    Saver
	log      logger.Logger
}

func New(schedule *model.Schedule, store Saver, log logger.Logger) *Controller {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Controller{schedule: schedule, store: store, log: log}
}

func (c *Controller) Schedule() *model.Schedule { return c.schedule }

// CellValue returns the raw value of the cell, "" when empty, out of range
// or for an unknown day.
func (c *Controller) CellValue(row int, day model.Day) string {
	if !day.Valid() {
		c.log.Warnf("unknown day %v for row %d", day, row)
		return ""
	}
	return c.schedule.Cell(row, day)
}

// DisplayValue returns the display text of a cell and its occupancy state.
func (c *Controller) DisplayValue(row int, day model.Day) (string, model.CellState) {
	raw := c.CellValue(row, day)
	return model.FormatLessonDisplay(raw), model.StateOf(raw)
}

// Prefill splits the current value into the subject and room an edit starts from.
func (c *Controller) Prefill(row int, day model.Day) (subject, room string) {
	return model.SplitLessonValue(c.CellValue(row, day))
}

// Title labels the edit interaction for a cell.
func (c *Controller) Title(row int, day model.Day) string {
	return fmt.Sprintf("%s, lekcja nr %d", day.Name(), row)
}

// ApplyEdit stores raw in the cell and saves the schedule. If the save
// fails the edit stays in memory and the error wraps the save failure.
func (c *Controller) ApplyEdit(row int, day model.Day, raw string) error {
	if err := c.set(row, day, raw); err != nil {
		return err
	}
	c.log.Infof("lesson updated: %s, no. %d to %q", day.Name(), row, c.schedule.Cell(row, day))
	return c.save()
}

// ApplyDelete empties the cell and saves the schedule.
func (c *Controller) ApplyDelete(row int, day model.Day) error {
	if err := c.set(row, day, ""); err != nil {
		return err
	}
	c.log.Infof("lesson deleted: %s, no. %d", day.Name(), row)
	return c.save()
}

// Handle dispatches a cell event. Cancelled events leave the schedule untouched.
func (c *Controller) Handle(ev CellEvent) error {
	switch ev.Kind {
	case EditConfirmed:
		return c.ApplyEdit(ev.Row, ev.Day, model.ParseLessonValue(ev.Subject, ev.Room))
	case DeleteRequested:
		return c.ApplyDelete(ev.Row, ev.Day)
	case Cancelled:
		c.log.Debugf("edit cancelled: %s, no. %d", ev.Day.Name(), ev.Row)
		return nil
	default:
		c.log.Warnf("ignoring cell event of kind %v", ev.Kind)
		return nil
	}
}

// set stores the trimmed value, matching what Save writes.
func (c *Controller) set(row int, day model.Day, value string) error {
	value = strings.TrimSpace(value)
	r := c.schedule.Row(row)
	if r == nil {
		c.log.Warnf("row out of bounds: %d", row)
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	if !r.Set(day, value) {
		c.log.Warnf("unknown day %v for row %d", day, row)
		return fmt.Errorf("%w: %v", model.ErrUnknownDay, day)
	}
	return nil
}

func (c *Controller) save() error {
	if err := c.store.Save(c.schedule); err != nil {
		return fmt.Errorf("lesson kept in memory, not saved: %w", err)
	}
	return nil
}
