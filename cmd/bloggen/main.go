// Command bloggen lists the blog entries and writes the Atom feed.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/goliatone/go-sitegen/cmd/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("bloggen: %v", err)
	}
}

func run(ctx context.Context) error {
	module, err := moduleBuilder(bootstrap.Options{})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.BlogHandler == nil {
		return fmt.Errorf("blog handler not configured")
	}
	return module.BlogHandler.Execute(ctx, module.BlogCommand)
}
