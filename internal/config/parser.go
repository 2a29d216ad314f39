package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/uicontrols/pkg/errors"
)

// DefaultSource names the built-in catalog in errors and logs.
const DefaultSource = "<builtin>"

//go:embed default_catalog.yaml
var defaultCatalog []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseCatalog loads a catalog file from disk, validates it, and returns the resulting model.
func ParseCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a catalog document. Unknown keys are rejected
// so that typos surface with their line number. source names the document
// in errors.
func Parse(data []byte, source string) (*Catalog, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cat Catalog
	if err := decoder.Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.NewParseError(source, 0, errors.New("catalog is empty"))
		}
		return nil, apperrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateCatalog(&cat); err != nil {
		return nil, err
	}

	return &cat, nil
}

// Default returns the built-in demo catalog.
func Default() *Catalog {
	cat, err := Parse(defaultCatalog, DefaultSource)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return cat
}

// Load returns the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return ParseCatalog(path)
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
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
