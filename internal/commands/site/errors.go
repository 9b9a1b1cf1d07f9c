package sitecmd

import (
	"errors"

	"github.com/goliatone/go-sitegen/internal/blog"
	"github.com/goliatone/go-sitegen/internal/collection"
	"github.com/goliatone/go-sitegen/internal/commands"
	"github.com/goliatone/go-sitegen/internal/generator"
)

// Text codes attached to classified failures.
const (
	CodeEntryFieldsMissing     = "ENTRY_FIELDS_MISSING"
	CodeEntryMetaMalformed     = "ENTRY_META_MALFORMED"
	CodeEntryMetaInvalid       = "ENTRY_META_INVALID"
	CodeEntryDateInvalid       = "ENTRY_DATE_INVALID"
	CodeBlogRootNotFound       = "BLOG_ROOT_NOT_FOUND"
	CodeFeedNoEntries          = "FEED_NO_ENTRIES"
	CodeFeedVerificationFailed = "FEED_VERIFICATION_FAILED"
	CodeCollectionNotFound     = "COLLECTION_SOURCE_NOT_FOUND"
)

// classify maps domain errors onto go-errors categories. Unknown errors are
// returned as is and categorised by the shared handler.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var (
		missing *blog.MissingFieldsError
		parse   *blog.MetaParseError
		invalid *blog.InvalidMetaError
		badDate *blog.DateParseError
	)
	switch {
	case errors.As(err, &missing):
		return commands.ValidationFailure(err, "entry metadata is missing required fields", CodeEntryFieldsMissing)
	case errors.As(err, &parse):
		return commands.ValidationFailure(err, "entry metadata is not valid JSON", CodeEntryMetaMalformed)
	case errors.As(err, &invalid):
		return commands.ValidationFailure(err, "entry metadata has invalid values", CodeEntryMetaInvalid)
	case errors.As(err, &badDate):
		return commands.ValidationFailure(err, "entry date cannot be parsed", CodeEntryDateInvalid)
	case errors.Is(err, blog.ErrRootNotFound):
		return commands.ExecutionFailure(err, "blog root not found", CodeBlogRootNotFound)
	case errors.Is(err, generator.ErrNoEntries):
		return commands.ExecutionFailure(err, "no blog entries to publish", CodeFeedNoEntries)
	case errors.Is(err, generator.ErrFeedVerification):
		return commands.ExecutionFailure(err, "generated feed failed verification", CodeFeedVerificationFailed)
	case errors.Is(err, collection.ErrSourceNotFound):
		return commands.ExecutionFailure(err, "collection source not found", CodeCollectionNotFound)
	default:
		return err
	}
}
