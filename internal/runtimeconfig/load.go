package runtimeconfig

import (
	"fmt"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

// EnvPrefix namespaces the environment overrides, e.g. SITEGEN_BLOG_ROOT.
const EnvPrefix = "SITEGEN"

// DefaultFiles lists the optional config files, later files winning.
var DefaultFiles = []string{
	"./sitegen.hcl",
	"./sitegen.local.hcl",
	"$HOME/.config/sitegen/config.hcl",
}

// Load starts from DefaultConfig and overlays the given HCL/JSON files and
// SITEGEN_* environment variables. Missing files are ignored. Command-line
// flags are never read. The result is validated.
func Load(files ...string) (Config, error) {
	cfg := DefaultConfig()

	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipDefaults: true,
		SkipFlags:    true,
		MergeFiles:   true,
		EnvPrefix:    EnvPrefix,
		Files:        files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return Config{}, fmt.Errorf("sitegen config: load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
