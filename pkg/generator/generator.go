// Package generator exposes the sitegen artifact builders for hosts that embed them.
// Use NewService with Config and Dependencies to build the Atom feed, entry pages or the collection table.
package generator

import (
	"github.com/goliatone/go-sitegen/internal/blog"
	"github.com/goliatone/go-sitegen/internal/collection"
	internal "github.com/goliatone/go-sitegen/internal/generator"
)

type (
	Service           = internal.Service
	Config            = internal.Config
	Dependencies      = internal.Dependencies
	FeedOptions       = internal.FeedOptions
	EntryOptions      = internal.EntryOptions
	CollectionOptions = internal.CollectionOptions
	BuildResult       = internal.BuildResult
	Artifact          = internal.Artifact
	Entry             = blog.Entry
	Meta              = blog.Meta
	Row               = collection.Row
)

var (
	ErrNoEntries        = internal.ErrNoEntries
	ErrFeedVerification = internal.ErrFeedVerification
)

// DefaultGeneratorName is written to the feed's generator element.
const DefaultGeneratorName = internal.DefaultGeneratorName

// NewService wires a generator with the supplied configuration and dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	return internal.NewService(cfg, deps)
}
