package blog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	schemas "github.com/goliatone/go-sitegen/internal/validation"
)

// RequiredFields lists the meta.json keys every entry must provide.
var RequiredFields = []string{"id", "title", "description", "date"}

var metaRules = validation.Map(
	validation.Key("id", validation.Required),
	validation.Key("title", validation.Required),
	validation.Key("description", validation.Required),
	validation.Key("date", validation.Required),
).AllowExtraKeys()

var metaSchema = schemas.MustCompile("sitegen://blog/meta.json", map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": "string"},
		"title":       map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"kind":        map[string]any{"type": "string"},
		"date": map[string]any{
			"anyOf": []any{
				map[string]any{"type": "string"},
				map[string]any{"type": "integer"},
			},
		},
	},
})

// DecodeMeta parses and validates the content of an entry's meta.json.
func DecodeMeta(slug, path string, data []byte) (Meta, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return Meta{}, &MetaParseError{Slug: slug, Path: path, Err: err}
	}
	if raw == nil {
		return Meta{}, &MetaParseError{Slug: slug, Path: path, Err: errors.New("document is not a JSON object")}
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Meta{}, &MetaParseError{Slug: slug, Path: path, Err: errors.New("extra data after JSON object")}
	}

	if missing := missingFields(raw); len(missing) > 0 {
		return Meta{}, &MissingFieldsError{Slug: slug, Fields: missing}
	}
	if err := metaSchema.Validate(raw); err != nil {
		return Meta{}, &InvalidMetaError{Slug: slug, Err: err}
	}

	return Meta{
		ID:          stringValue(raw["id"]),
		Title:       stringValue(raw["title"]),
		Description: stringValue(raw["description"]),
		Date:        stringValue(raw["date"]),
		Kind:        stringValue(raw["kind"]),
	}, nil
}

func missingFields(raw map[string]any) []string {
	err := validation.Validate(raw, metaRules)
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return append([]string(nil), RequiredFields...)
	}
	missing := make([]string, 0, len(fieldErrs))
	for key := range fieldErrs {
		missing = append(missing, key)
	}
	sort.Strings(missing)
	return missing
}

func stringValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case json.Number:
		return typed.String()
	default:
		return strings.TrimSpace(fmt.Sprint(typed))
	}
}
