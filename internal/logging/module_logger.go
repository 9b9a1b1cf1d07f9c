package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

const (
	rootModule       = "sitegen"
	blogModule       = "sitegen.blog"
	generatorModule  = "sitegen.generator"
	collectionModule = "sitegen.collection"
	markdownModule   = "sitegen.markdown"
)

const (
	fieldEntrySlug = "entry"
	fieldArtifact  = "artifact"
	fieldStage     = "stage"
)

// ModuleLogger returns a logger scoped to module. Without a provider it falls
// back to NoOp. The module name is attached as the "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if strings.TrimSpace(module) == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// BlogLogger returns the logger used by entry discovery and metadata loading.
func BlogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, blogModule)
}

// GeneratorLogger returns the logger used while building artifacts.
func GeneratorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generatorModule)
}

// CollectionLogger returns the logger used by the CSV reader.
func CollectionLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, collectionModule)
}

// MarkdownLogger returns the logger used by entry page rendering.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// WithEntryContext adds entry slug, artifact path and stage fields, skipping
// blank values.
func WithEntryContext(logger interfaces.Logger, slug, artifact, stage string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[fieldEntrySlug] = trimmed
	}
	if trimmed := strings.TrimSpace(artifact); trimmed != "" {
		fields[fieldArtifact] = trimmed
	}
	if trimmed := strings.TrimSpace(stage); trimmed != "" {
		fields[fieldStage] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that discards everything.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
