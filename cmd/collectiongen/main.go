// Command collectiongen turns a Discogs CSV export into an HTML table page.
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
		log.Fatalf("collectiongen: %v", err)
	}
}

func run(ctx context.Context) error {
	module, err := moduleBuilder(bootstrap.Options{})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.CollectionHandler == nil {
		return fmt.Errorf("collection handler not configured")
	}
	return module.CollectionHandler.Execute(ctx, module.CollectionCommand)
}
