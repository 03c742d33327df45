package csvio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/planlekcji/pkg/model"
)

// Save rewrites the whole file with one line per row. The in-memory
// schedule is never modified; on failure the error wraps ErrWrite.
func (s *Store) Save(schedule *model.Schedule) error {
	data, err := EncodeSchedule(schedule)
	if err != nil {
		s.log.Errorf("error saving schedule to %s: %v", s.path, err)
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		s.log.Errorf("error saving schedule to %s: %v", s.path, err)
		return fmt.Errorf("%w: %s: %w", ErrWrite, s.path, err)
	}
	s.log.Debugf("schedule saved to %s", s.path)
	return nil
}

// EncodeSchedule formats the schedule as monday;tuesday;wednesday;thursday;friday
// lines in row order.
func EncodeSchedule(schedule *model.Schedule) ([]byte, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	rows := make([]*model.ScheduleCSVRow, 0, len(schedule.Rows))
	for _, r := range schedule.Rows {
		row := r.CSVRow()
		row.Monday = strings.TrimSpace(row.Monday)
		row.Tuesday = strings.TrimSpace(row.Tuesday)
		row.Wednesday = strings.TrimSpace(row.Wednesday)
		row.Thursday = strings.TrimSpace(row.Thursday)
		row.Friday = strings.TrimSpace(row.Friday)
		rows = append(rows, row)
	}

	var buf bytes.Buffer
	w := newLineWriter(&buf)
	if err := gocsv.MarshalCSVWithoutHeaders(&rows, w); err != nil {
		return nil, err
	}
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic replaces path with data through a temp file in the same
// directory, so readers see either the old or the new content.
func writeFileAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// PrintSchedule writes one block per slot: number, time label and the
// display value of every occupied day.
func PrintSchedule(w io.Writer, schedule *model.Schedule) error {
	for _, r := range schedule.Rows {
		if _, err := fmt.Fprintf(w, "%2d  %s\n", r.Number, r.Time); err != nil {
			return err
		}
		for _, d := range model.Days() {
			raw := r.Get(d)
			if model.StateOf(raw) == model.CellEmpty {
				continue
			}
			display := strings.ReplaceAll(model.FormatLessonDisplay(raw), "\n", " | ")
			if _, err := fmt.Fprintf(w, "    %-13s %s\n", d.Name(), display); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "Occupied cells: %d\n", schedule.Occupied())
	return err
}
