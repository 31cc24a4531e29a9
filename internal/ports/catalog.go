package ports

import (
	"context"

	"github.com/alexisbeaulieu97/cadence/internal/config"
)

// CatalogRef names a catalog either by built-in preset or by file path.
// Exactly one of the fields should be set.
type CatalogRef struct {
	Preset string
	Path   string
}

// String renders the reference for logs and error messages.
func (r CatalogRef) String() string {
	if r.Path != "" {
		return r.Path
	}
	return "preset:" + r.Preset
}

// CatalogLoader loads motion catalogs from an external source such as the
// filesystem or the embedded presets. Implementations must respect context
// cancellation before doing work and return errors from pkg/errors
// (ParseError, ValidationError, NotFoundError) so callers can inspect them.
type CatalogLoader interface {
	// Load materialises a fully validated catalog.
	Load(ctx context.Context, ref CatalogRef) (*config.Catalog, error)
}
