package blog

import (
	"errors"
	"fmt"
	"strings"
)

// Meta is the content of an entry's meta.json.
type Meta struct {
	ID          string
	Title       string
	Description string
	// Date is kept verbatim; ParseDate turns it into a timestamp.
	Date string
	Kind string
}

// Entry pairs an entry directory name with its metadata.
type Entry struct {
	Slug string
	Meta Meta
}

var (
	// ErrRootNotFound is returned when the blog root is missing or not a directory.
	ErrRootNotFound = errors.New("blog: root directory not found")
	// ErrDateEmpty is returned by ParseDate for blank input.
	ErrDateEmpty = errors.New("blog: date is empty")
	// ErrDateInvalid is returned by ParseDate when no supported format matches.
	ErrDateInvalid = errors.New("blog: date is not a recognised timestamp")
)

// MetaParseError reports a meta.json that could not be read as a JSON object.
type MetaParseError struct {
	Slug string
	Path string
	Err  error
}

func (e *MetaParseError) Error() string {
	return fmt.Sprintf("blog: entry %s: parse %s: %v", e.Slug, e.Path, e.Err)
}

func (e *MetaParseError) Unwrap() error { return e.Err }

// MissingFieldsError lists the required metadata fields an entry lacks.
type MissingFieldsError struct {
	Slug   string
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("blog: entry %s: missing required fields: %s", e.Slug, strings.Join(e.Fields, ", "))
}

// InvalidMetaError wraps schema violations in an entry's metadata.
type InvalidMetaError struct {
	Slug string
	Err  error
}

func (e *InvalidMetaError) Error() string {
	return fmt.Sprintf("blog: entry %s: invalid metadata: %v", e.Slug, e.Err)
}

func (e *InvalidMetaError) Unwrap() error { return e.Err }

// DateParseError reports an entry date that ParseDate rejected.
type DateParseError struct {
	Slug  string
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("blog: entry %s: invalid date %q: %v", e.Slug, e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }
