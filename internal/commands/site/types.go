package sitecmd

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-sitegen/internal/blog"
	"github.com/goliatone/go-sitegen/internal/generator"
)

const (
	buildBlogMessageType       = "sitegen.blog.build"
	buildCollectionMessageType = "sitegen.collection.build"
)

// Operation names reported through ResultEnvelope.
const (
	OperationDiscover   = "discover"
	OperationEntries    = "entries"
	OperationFeed       = "feed"
	OperationCollection = "collection"
)

// ResultCallback receives intermediate and final results. It runs
// synchronously on the handler goroutine.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope carries the outcome of one build stage.
type ResultEnvelope struct {
	Operation string
	Entries   []blog.Entry
	Result    *generator.BuildResult
	// Skipped marks a stage that was disabled for this run.
	Skipped  bool
	Metadata map[string]any
}

// BuildBlogCommand discovers entries, optionally renders entry pages and
// writes the Atom feed.
type BuildBlogCommand struct {
	FeedOutput     string         `json:"feed_output"`
	RenderEntries  bool           `json:"render_entries,omitempty"`
	EntryRoot      string         `json:"entry_root,omitempty"`
	EntrySource    string         `json:"entry_source,omitempty"`
	EntryOutput    string         `json:"entry_output,omitempty"`
	DryRun         bool           `json:"dry_run,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildBlogCommand) Type() string { return buildBlogMessageType }

// Validate requires a feed output, and entry paths when entry pages are on.
func (m BuildBlogCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.FeedOutput, validation.Required),
		validation.Field(&m.EntryRoot, validation.When(m.RenderEntries, validation.Required)),
		validation.Field(&m.EntrySource, validation.When(m.RenderEntries, validation.Required)),
		validation.Field(&m.EntryOutput, validation.When(m.RenderEntries, validation.Required)),
	)
}

// BuildCollectionCommand converts a collection export into an HTML page.
type BuildCollectionCommand struct {
	Source         string         `json:"source"`
	Output         string         `json:"output"`
	DryRun         bool           `json:"dry_run,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildCollectionCommand) Type() string { return buildCollectionMessageType }

// Validate requires distinct source and output paths.
func (m BuildCollectionCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Source, validation.Required),
		validation.Field(&m.Output,
			validation.Required,
			validation.NotIn(m.Source).Error("must differ from source"),
		),
	)
}
