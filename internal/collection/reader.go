// Package collection reads a Discogs collection export.
package collection

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// MinColumns is the shortest record that still carries the release year.
const MinColumns = 7

const (
	columnArtist   = 1
	columnTitle    = 2
	columnReleased = 6
)

// ErrSourceNotFound is returned when the export file does not exist.
var ErrSourceNotFound = errors.New("collection: source file not found")

// Row is one album of the collection.
type Row struct {
	Artist   string
	Title    string
	Released string
}

// Reader turns CSV exports into rows.
type Reader struct {
	logger interfaces.Logger
}

// NewReader returns a Reader logging through logger, which may be nil.
func NewReader(logger interfaces.Logger) *Reader {
	return &Reader{logger: logging.EnsureLogger(logger)}
}

// ReadRows reads every record after the header. Records shorter than
// MinColumns are skipped.
func (r *Reader) ReadRows(src io.Reader) ([]Row, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("collection: parse csv: %w", err)
	}
	if len(records) == 0 {
		return []Row{}, nil
	}

	body := records[1:]
	usable := lo.Filter(body, func(record []string, _ int) bool {
		return len(record) >= MinColumns
	})
	if skipped := len(body) - len(usable); skipped > 0 {
		r.logger.Warn("collection.rows.skipped", "rows", skipped, "min_columns", MinColumns)
	}

	return lo.Map(usable, func(record []string, _ int) Row {
		return Row{
			Artist:   record[columnArtist],
			Title:    record[columnTitle],
			Released: record[columnReleased],
		}
	}), nil
}

// ReadFile opens path and reads its rows.
func (r *Reader) ReadFile(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("collection: open %s: %w", path, err)
	}
	defer file.Close()

	rows, err := r.ReadRows(file)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("collection.rows.loaded", "source", path, "rows", len(rows))
	return rows, nil
}
