package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	cadenceerrors "github.com/alexisbeaulieu97/cadence/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseCatalog loads a catalog file from disk, validates it, and returns it.
func ParseCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cadenceerrors.NewParseError(path, 0, err)
	}
	return LoadCatalog(data, path)
}

// LoadCatalog decodes and validates catalog YAML. name labels errors.
func LoadCatalog(data []byte, name string) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, cadenceerrors.NewParseError(name, extractLine(err), err)
	}

	if err := ValidateCatalog(&cat); err != nil {
		return nil, err
	}

	return &cat, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
