package csvio

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/planlekcji/internal/logger"
	"github.com/rhyrak/planlekcji/pkg/model"
)

// Delimiter separates day values on a schedule line.
const Delimiter = ';'

var (
	// ErrRead wraps failures to read an existing schedule file.
	ErrRead = errors.New("read schedule")
	// ErrWrite wraps failures to persist the schedule file.
	ErrWrite = errors.New("write schedule")

	errMalformed = errors.New("malformed line")
)

// maxLineSize bounds a single schedule line.
const maxLineSize = 1 << 20

// Store loads and saves a schedule kept in a flat ;-delimited text file.
type Store struct {
	path  string
	times []string
	log   logger.Logger
}

// NewStore creates a store for path. times supplies the static time labels
// rows are built from; a nil log disables logging.
func NewStore(path string, times []string, log logger.Logger) *Store {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Store{path: path, times: times, log: log}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load builds an empty schedule from the time labels and overlays the day
// values found in the file, line i onto row i. Lines without exactly five
// fields are skipped. A missing file is created with empty rows.
//
// Load always returns a usable schedule. A non-nil error is a notice: on a
// read failure the schedule is reset to empty, the file is rewritten, and
// the error wraps ErrRead (and ErrWrite if the rewrite failed too).
func (s *Store) Load() (*model.Schedule, error) {
	schedule := model.NewSchedule(s.times)

	lines, err := s.readLines()
	if errors.Is(err, os.ErrNotExist) {
		s.log.Infof("schedule file %s not found, creating it", s.path)
		return schedule, s.Save(schedule)
	}
	if err != nil {
		readErr := fmt.Errorf("%w: %s: %w", ErrRead, s.path, err)
		s.log.Errorf("error loading schedule: %v, resetting schedule", readErr)
		return schedule, errors.Join(readErr, s.Save(schedule))
	}

	for i := 0; i < min(len(lines), len(schedule.Rows)); i++ {
		row, err := decodeLine(lines[i])
		if err != nil {
			s.log.Warnf("skipping malformed line %d in %s: %q", i+1, s.path, lines[i])
			continue
		}
		applyRow(schedule.Rows[i], row)
	}
	s.log.Debugw("schedule loaded", map[string]any{
		"path":     s.path,
		"lines":    len(lines),
		"occupied": schedule.Occupied(),
	})
	return schedule, nil
}

func (s *Store) readLines() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// decodeLine parses one schedule line into its five day values.
func decodeLine(line string) (*model.ScheduleCSVRow, error) {
	rows := []*model.ScheduleCSVRow{}
	if err := gocsv.UnmarshalCSVWithoutHeaders(newLineReader(line), &rows); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformed, err)
	}
	if len(rows) != 1 {
		return nil, errMalformed
	}
	return rows[0], nil
}

func applyRow(dst *model.LessonRow, src *model.ScheduleCSVRow) {
	dst.Monday = strings.TrimSpace(src.Monday)
	dst.Tuesday = strings.TrimSpace(src.Tuesday)
	dst.Wednesday = strings.TrimSpace(src.Wednesday)
	dst.Thursday = strings.TrimSpace(src.Thursday)
	dst.Friday = strings.TrimSpace(src.Friday)
}
