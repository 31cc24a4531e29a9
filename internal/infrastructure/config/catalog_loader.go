package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cfgpkg "github.com/alexisbeaulieu97/cadence/internal/config"
	"github.com/alexisbeaulieu97/cadence/internal/ports"
	cadenceerrors "github.com/alexisbeaulieu97/cadence/pkg/errors"
)

// CatalogLoader implements ports.CatalogLoader over the embedded presets and
// YAML files on disk.
type CatalogLoader struct {
	logger ports.Logger
}

// NewCatalogLoader creates a loader. A nil logger disables logging.
func NewCatalogLoader(logger ports.Logger) *CatalogLoader {
	return &CatalogLoader{logger: logger}
}

var _ ports.CatalogLoader = (*CatalogLoader)(nil)

// Load resolves ref to a validated catalog. An empty ref loads the hero preset.
func (l *CatalogLoader) Load(ctx context.Context, ref ports.CatalogRef) (*cfgpkg.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if ref.Path != "" && ref.Preset != "" {
		return nil, cadenceerrors.NewValidationError("catalog", "choose either a preset or a file, not both", nil)
	}
	if ref.Path == "" && ref.Preset == "" {
		ref.Preset = "hero"
	}

	l.logDebug(ctx, "loading catalog", "source", ref.String())

	var (
		cat *cfgpkg.Catalog
		err error
	)
	if ref.Path != "" {
		cat, err = l.loadFile(ref.Path)
	} else {
		cat, err = cfgpkg.Preset(ref.Preset)
	}
	if err != nil {
		l.logError(ctx, "failed to load catalog", err, "source", ref.String())
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	l.logInfo(ctx, "catalog loaded",
		"source", ref.String(),
		"catalog", cat.Name,
		"elements", len(cat.Elements),
		"sequences", len(cat.Sequences),
	)
	return cat, nil
}

func (l *CatalogLoader) loadFile(path string) (*cfgpkg.Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, cadenceerrors.NewNotFoundError("catalog file", path)
		}
		return nil, cadenceerrors.NewParseError(path, 0, err)
	}
	if info.IsDir() {
		return nil, cadenceerrors.NewValidationError("catalog", fmt.Sprintf("%s is a directory", path), nil)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
	default:
		return nil, cadenceerrors.NewValidationError("catalog", fmt.Sprintf("unsupported catalog file extension %q", ext), nil)
	}

	return cfgpkg.ParseCatalog(path)
}

func (l *CatalogLoader) logDebug(ctx context.Context, msg string, fields ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, fields...)
}

func (l *CatalogLoader) logInfo(ctx context.Context, msg string, fields ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, fields...)
}

func (l *CatalogLoader) logError(ctx context.Context, msg string, err error, fields ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Error(ctx, msg, append(fields, "error", err)...)
}
