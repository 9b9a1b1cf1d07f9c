// Package blog discovers blog entries on disk and loads their metadata.
//
// An entry is a directory directly under the blog root holding a meta.json
// file with at least id, title, description and date. Directories without
// the file are ignored.
package blog
