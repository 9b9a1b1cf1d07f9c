package generator

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type writeCategory string

const (
	categoryFeed       writeCategory = "feed"
	categoryEntry      writeCategory = "entry"
	categoryCollection writeCategory = "collection"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// writeFileRequest describes a file write routed through the artifact writer.
type writeFileRequest struct {
	Path        string
	Content     io.Reader
	Size        int64
	Category    writeCategory
	ContentType string
	Checksum    string
}

func newWriteRequest(path string, category writeCategory, contentType string, content []byte) writeFileRequest {
	return writeFileRequest{
		Path:        path,
		Content:     bytes.NewReader(content),
		Size:        int64(len(content)),
		Category:    category,
		ContentType: contentType,
		Checksum:    computeHash(content),
	}
}

// artifactWriter abstracts where generator outputs end up.
type artifactWriter interface {
	EnsureDir(ctx context.Context, dir string) error
	WriteFile(ctx context.Context, req writeFileRequest) error
	// Checksum returns the sha256 of the file at path and whether it exists.
	Checksum(ctx context.Context, path string) (string, bool, error)
}

// fileWriter writes to the local filesystem. Files are written to a
// temporary sibling and renamed into place.
type fileWriter struct{}

func (fileWriter) EnsureDir(_ context.Context, dir string) error {
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("generator: ensure dir %s: %w", dir, err)
	}
	return nil
}

func (fileWriter) WriteFile(_ context.Context, req writeFileRequest) error {
	if req.Content == nil {
		return errors.New("generator: write requires content reader")
	}
	if strings.TrimSpace(req.Path) == "" {
		return errOutputRequired
	}

	tmp, err := os.CreateTemp(parentDir(req.Path), "."+filepath.Base(req.Path)+".*")
	if err != nil {
		return fmt.Errorf("generator: write %s: %w", req.Path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := io.Copy(tmp, req.Content); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("generator: write %s: %w", req.Path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("generator: write %s: %w", req.Path, err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		cleanup()
		return fmt.Errorf("generator: write %s: %w", req.Path, err)
	}
	if err := os.Rename(tmpName, req.Path); err != nil {
		cleanup()
		return fmt.Errorf("generator: write %s: %w", req.Path, err)
	}
	return nil
}

func (fileWriter) Checksum(_ context.Context, path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("generator: read %s: %w", path, err)
	}
	return computeHash(data), true, nil
}

type noopWriter struct{}

func (noopWriter) EnsureDir(context.Context, string) error { return nil }

func (noopWriter) WriteFile(context.Context, writeFileRequest) error { return nil }

func (noopWriter) Checksum(context.Context, string) (string, bool, error) { return "", false, nil }

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
