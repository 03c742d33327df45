package csvio

import (
	"errors"
	"io"
	"strings"

	"github.com/rhyrak/planlekcji/pkg/model"
)

var errFieldCount = errors.New("wrong number of fields")

// lineReader feeds gocsv a single schedule line split on the delimiter.
// Quotes carry no meaning in the schedule file.
type lineReader struct {
	line string
	done bool
}

func newLineReader(line string) *lineReader {
	return &lineReader{line: line}
}

func (r *lineReader) Read() ([]string, error) {
	if r.done {
		return nil, io.EOF
	}
	r.done = true
	fields := strings.Split(r.line, string(Delimiter))
	if len(fields) != model.NumberOfDays {
		return nil, errFieldCount
	}
	return fields, nil
}

func (r *lineReader) ReadAll() ([][]string, error) {
	record, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return [][]string{record}, nil
}

// lineWriter joins each record with the delimiter, one line per record,
// without quoting.
type lineWriter struct {
	out io.Writer
	err error
}

func newLineWriter(out io.Writer) *lineWriter {
	return &lineWriter{out: out}
}

func (w *lineWriter) Write(record []string) error {
	if w.err != nil {
		return w.err
	}
	_, w.err = io.WriteString(w.out, strings.Join(record, string(Delimiter))+"\n")
	return w.err
}

func (w *lineWriter) Flush() {}

func (w *lineWriter) Error() error { return w.err }
