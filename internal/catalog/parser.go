package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"

	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

//go:embed catalog.yaml
var defaultDocument []byte

var (
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)

	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalog compiled into the binary. The document is parsed
// and validated once; later calls share the result.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse("catalog.yaml", defaultDocument)
	})
	return defaultCat, defaultErr
}

// Parse decodes a catalog document, validates it, and returns the resulting model.
func Parse(source string, data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, vitrineerrors.NewParseError(source, 0, fmt.Errorf("empty document"))
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cat Catalog
	if err := dec.Decode(&cat); err != nil {
		return nil, vitrineerrors.NewParseError(source, extractLine(err), err)
	}

	if err := Validate(&cat); err != nil {
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
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
