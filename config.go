package sitegen

import "github.com/goliatone/go-sitegen/internal/runtimeconfig"

// Config validation errors, re-exported so hosts can match them with errors.Is.
var (
	ErrBlogRootRequired         = runtimeconfig.ErrBlogRootRequired
	ErrFeedOutputRequired       = runtimeconfig.ErrFeedOutputRequired
	ErrSiteLinkInvalid          = runtimeconfig.ErrSiteLinkInvalid
	ErrCollectionSourceRequired = runtimeconfig.ErrCollectionSourceRequired
	ErrCollectionOutputRequired = runtimeconfig.ErrCollectionOutputRequired
	ErrCollectionPathsConflict  = runtimeconfig.ErrCollectionPathsConflict
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
	ErrCommandTimeoutInvalid    = runtimeconfig.ErrCommandTimeoutInvalid
)

// Config holds the site, path, logging and command settings shared by both CLIs.
type Config = runtimeconfig.Config

// DefaultConfig returns the configuration used when no file or SITEGEN_*
// variable overrides it.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads the given HCL files over the defaults, then the
// environment. Later files win.
func LoadConfig(files ...string) (Config, error) {
	return runtimeconfig.Load(files...)
}
