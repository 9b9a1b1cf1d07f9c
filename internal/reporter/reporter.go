// Package reporter prints the operator-facing progress listing.
package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/goliatone/go-sitegen/internal/blog"
	sitecmd "github.com/goliatone/go-sitegen/internal/commands/site"
	"github.com/goliatone/go-sitegen/internal/generator"
)

const (
	bannerName  = "CI Helper 9000"
	emptyKind   = "-"
	listingText = "Listing blog entries"
)

// Status is the bracketed outcome printed after a stage.
type Status string

const (
	StatusDone      Status = "Done"
	StatusSkipped   Status = "Skipped"
	StatusUnchanged Status = "Unchanged"
	StatusDryRun    Status = "Dry run"
)

// Options configures a Reporter.
type Options struct {
	// Color enables ANSI colors. It is ignored when NO_COLOR is set.
	Color bool
}

// Reporter writes progress lines to an io.Writer.
type Reporter struct {
	out    io.Writer
	accent *color.Color
	plain  *color.Color
	good   *color.Color
	muted  *color.Color
}

// New returns a Reporter writing to out, or stdout when out is nil.
func New(out io.Writer, opts Options) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	enabled := opts.Color
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		enabled = false
	}

	r := &Reporter{
		out:    out,
		accent: color.New(color.FgRed),
		plain:  color.New(color.FgWhite),
		good:   color.New(color.FgGreen),
		muted:  color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{r.accent, r.plain, r.good, r.muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Banner prints "CI Helper 9000 :: <title>".
func (r *Reporter) Banner(title string) {
	fmt.Fprintf(r.out, "%s :: %s\n", r.accent.Sprint(bannerName), r.plain.Sprint(title))
}

// Entries prints one "<kind> <slug>" line per entry.
func (r *Reporter) Entries(entries []blog.Entry) {
	for _, entry := range entries {
		kind := strings.TrimSpace(entry.Meta.Kind)
		if kind == "" {
			kind = emptyKind
		}
		fmt.Fprintf(r.out, "%s %s\n", r.good.Sprint(kind), r.plain.Sprint(entry.Slug))
	}
}

// Stage prints ":: <name> [<status>]".
func (r *Reporter) Stage(name string, status Status) {
	marker := r.good
	if status != StatusDone {
		marker = r.muted
	}
	fmt.Fprintf(r.out, "%s %s %s\n",
		r.accent.Sprint("::"),
		r.plain.Sprint(name),
		marker.Sprintf("[%s]", status),
	)
}

// Collection prints the summary line of a collection build.
func (r *Reporter) Collection(output string, rows int) {
	fmt.Fprintf(r.out, "Generated %s with %d albums!\n", output, rows)
}

// Observe renders a command result envelope.
func (r *Reporter) Observe(env sitecmd.ResultEnvelope) {
	switch env.Operation {
	case sitecmd.OperationDiscover:
		r.Banner(listingText)
		r.Entries(env.Entries)
	case sitecmd.OperationEntries:
		status := StatusSkipped
		if !env.Skipped {
			status = statusOf(env.Result)
		}
		r.Stage("Generating dynamic blog entries", status)
	case sitecmd.OperationFeed:
		r.Stage("Generating ATOM feed", statusOf(env.Result))
	case sitecmd.OperationCollection:
		output, _ := env.Metadata["output"].(string)
		items := 0
		if env.Result != nil {
			items = env.Result.Items
		}
		r.Collection(output, items)
	}
}

func statusOf(result *generator.BuildResult) Status {
	switch {
	case result == nil:
		return StatusDone
	case result.DryRun:
		return StatusDryRun
	case result.Written == 0 && result.Skipped > 0:
		return StatusUnchanged
	default:
		return StatusDone
	}
}
