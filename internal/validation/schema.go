// Package validation compiles JSON schemas and reports payload violations as
// flat location/message issues.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrSchemaValidation = errors.New("schema validation failed")
)

// Issue is a single schema violation.
type Issue struct {
	Location string
	Message  string
}

// PayloadValidationError lists every violation found in a payload.
type PayloadValidationError struct {
	Issues []Issue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Schema is a compiled JSON schema.
type Schema struct {
	compiled *jsonschema.Schema
}

// Compile compiles a draft 2020-12 schema given as a Go map.
func Compile(name string, schema map[string]any) (*Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(name, bytes.NewReader(encoded)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Schema{compiled: compiled}, nil
}

// MustCompile is Compile for package-level schemas.
func MustCompile(name string, schema map[string]any) *Schema {
	compiled, err := Compile(name, schema)
	if err != nil {
		panic(err)
	}
	return compiled
}

// Validate checks payload, which must be made of JSON-compatible values
// (maps, slices, strings, bools, float64 or json.Number).
func (s *Schema) Validate(payload any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	if err := s.compiled.Validate(payload); err != nil {
		return &PayloadValidationError{Issues: Issues(err), Cause: err}
	}
	return nil
}

// Issues flattens err into issues sorted by location.
func Issues(err error) []Issue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) || validationErr == nil {
		return []Issue{{Message: err.Error()}}
	}

	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Location < issues[j].Location
	})
	return issues
}
