package config

import (
	"embed"
	"path"
	"sort"
	"strings"

	cadenceerrors "github.com/alexisbeaulieu97/cadence/pkg/errors"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// PresetNames lists the built-in catalogs in lexical order.
func PresetNames() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names
}

// Preset loads the named built-in catalog.
func Preset(name string) (*Catalog, error) {
	data, err := presetFS.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return nil, cadenceerrors.NewNotFoundError("preset", name)
	}
	return LoadCatalog(data, "preset:"+name)
}
