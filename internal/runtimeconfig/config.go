package runtimeconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrBlogRootRequired         = errors.New("sitegen config: blog root is required")
	ErrFeedOutputRequired       = errors.New("sitegen config: feed output path is required")
	ErrSiteLinkInvalid          = errors.New("sitegen config: site link must be an absolute http(s) URL")
	ErrCollectionSourceRequired = errors.New("sitegen config: collection source is required")
	ErrCollectionOutputRequired = errors.New("sitegen config: collection output is required")
	ErrCollectionPathsConflict  = errors.New("sitegen config: collection source and output must differ")
	ErrLoggingProviderUnknown   = errors.New("sitegen config: logging provider is invalid")
	ErrLoggingLevelInvalid      = errors.New("sitegen config: logging level is invalid")
	ErrLoggingFormatInvalid     = errors.New("sitegen config: logging format is invalid")
	ErrCommandTimeoutInvalid    = errors.New("sitegen config: command timeout must be zero or positive")
)

const (
	DefaultSiteTitle        = "Dave's Blog"
	DefaultSiteLink         = "https://www.aizenberg.co.uk/blog/"
	DefaultSiteDescription  = "My Blog Description"
	DefaultBlogRoot         = "blog/"
	DefaultFeedFile         = "rss.xml"
	DefaultMetaFile         = "meta.json"
	DefaultCollectionSource = "discogs.csv"
	DefaultCollectionOutput = "index.html"
)

// Config holds every setting the CLIs use. The defaults are the site's
// hard-coded paths and titles; files and env only override them.
type Config struct {
	SiteTitle       string `hcl:"site_title" json:"site_title" env:"SITE_TITLE"`
	SiteLink        string `hcl:"site_link" json:"site_link" env:"SITE_LINK"`
	SiteDescription string `hcl:"site_description" json:"site_description" env:"SITE_DESCRIPTION"`

	BlogRoot      string `hcl:"blog_root" json:"blog_root" env:"BLOG_ROOT"`
	MetaFile      string `hcl:"meta_file" json:"meta_file" env:"META_FILE"`
	FeedFile      string `hcl:"feed_file" json:"feed_file" env:"FEED_FILE"`
	VerifyFeed    bool   `hcl:"verify_feed" json:"verify_feed" env:"VERIFY_FEED"`
	RenderEntries bool   `hcl:"render_entries" json:"render_entries" env:"RENDER_ENTRIES"`
	EntrySource   string `hcl:"entry_source" json:"entry_source" env:"ENTRY_SOURCE"`
	EntryOutput   string `hcl:"entry_output" json:"entry_output" env:"ENTRY_OUTPUT"`

	CollectionSource string `hcl:"collection_source" json:"collection_source" env:"COLLECTION_SOURCE"`
	CollectionOutput string `hcl:"collection_output" json:"collection_output" env:"COLLECTION_OUTPUT"`

	DryRun         bool          `hcl:"dry_run" json:"dry_run" env:"DRY_RUN"`
	CommandTimeout time.Duration `hcl:"command_timeout" json:"command_timeout" env:"COMMAND_TIMEOUT"`
	Color          bool          `hcl:"color" json:"color" env:"COLOR"`

	LogProvider string `hcl:"log_provider" json:"log_provider" env:"LOG_PROVIDER"`
	LogLevel    string `hcl:"log_level" json:"log_level" env:"LOG_LEVEL"`
	LogFormat   string `hcl:"log_format" json:"log_format" env:"LOG_FORMAT"`
}

// DefaultConfig returns the configuration the CLIs run with when no config
// file or SITEGEN_* variable is present.
func DefaultConfig() Config {
	return Config{
		SiteTitle:        DefaultSiteTitle,
		SiteLink:         DefaultSiteLink,
		SiteDescription:  DefaultSiteDescription,
		BlogRoot:         DefaultBlogRoot,
		MetaFile:         DefaultMetaFile,
		FeedFile:         DefaultFeedFile,
		VerifyFeed:       true,
		RenderEntries:    false,
		EntrySource:      "index.md",
		EntryOutput:      "index.html",
		CollectionSource: DefaultCollectionSource,
		CollectionOutput: DefaultCollectionOutput,
		CommandTimeout:   time.Minute,
		Color:            true,
		LogProvider:      "console",
		LogLevel:         "info",
	}
}

// FeedPath is where the Atom feed is written.
func (cfg Config) FeedPath() string {
	return filepath.Join(cfg.BlogRoot, cfg.FeedFile)
}

// Validate checks the settings that would otherwise fail late in a run.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.BlogRoot) == "" {
		return ErrBlogRootRequired
	}
	if strings.TrimSpace(cfg.FeedFile) == "" {
		return ErrFeedOutputRequired
	}
	link := strings.TrimSpace(cfg.SiteLink)
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return fmt.Errorf("%w: %q", ErrSiteLinkInvalid, cfg.SiteLink)
	}
	source := strings.TrimSpace(cfg.CollectionSource)
	output := strings.TrimSpace(cfg.CollectionOutput)
	if source == "" {
		return ErrCollectionSourceRequired
	}
	if output == "" {
		return ErrCollectionOutputRequired
	}
	if filepath.Clean(source) == filepath.Clean(output) {
		return ErrCollectionPathsConflict
	}
	if cfg.CommandTimeout < 0 {
		return ErrCommandTimeoutInvalid
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.LogProvider))
	switch provider {
	case "console", "gologger":
	default:
		return fmt.Errorf("%w: %q", ErrLoggingProviderUnknown, cfg.LogProvider)
	}
	if !isSupportedLevel(cfg.LogLevel) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, cfg.LogLevel)
	}
	if provider == "gologger" && !isSupportedFormat(cfg.LogFormat) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, cfg.LogFormat)
	}
	return nil
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json", "console", "pretty":
		return true
	default:
		return false
	}
}
