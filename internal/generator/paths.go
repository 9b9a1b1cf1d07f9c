package generator

import (
	"path"
	"path/filepath"
	"strings"
)

const (
	defaultEntrySource = "index.md"
	defaultEntryOutput = "index.html"
)

// entrySourcePath is relative to the blog filesystem, so it always uses
// forward slashes.
func entrySourcePath(slug, source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		source = defaultEntrySource
	}
	return path.Join(slug, source)
}

func entryOutputPath(root, slug, output string) string {
	output = strings.TrimSpace(output)
	if output == "" {
		output = defaultEntryOutput
	}
	return filepath.Join(root, slug, output)
}

// entryLink joins the site link and an entry slug with a single slash.
func entryLink(siteLink, slug string) string {
	base := strings.TrimSpace(siteLink)
	if base == "" {
		return slug
	}
	return strings.TrimRight(base, "/") + "/" + strings.Trim(slug, "/")
}

func parentDir(p string) string {
	dir := filepath.Dir(p)
	if dir == "" {
		return "."
	}
	return dir
}
