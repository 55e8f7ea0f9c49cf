package bank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type schemaFile struct {
	Banks []Schema `yaml:"banks"`
}

// LoadFile reads extra bank schemas from a YAML file of the form:
//
//	banks:
//	  - name: Tangerine
//	    date: [Transaction date]
//	    merchant: [Name]
//	    amount: [Amount]
//	    date_layout: 1/2/2006
func LoadFile(path string) ([]Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bank file: %w", err)
	}

	var f schemaFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing bank file: %w", err)
	}

	for _, s := range f.Banks {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("bank file %s: %w", path, err)
		}
	}

	return f.Banks, nil
}

// Load returns the built-in registry extended with the schemas in path.
// An empty path yields the built-in registry.
func Load(path string) (*Registry, error) {
	reg := Default()
	if path == "" {
		return reg, nil
	}

	extra, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return reg.With(extra...)
}
