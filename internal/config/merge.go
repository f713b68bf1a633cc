package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overlaySections maps each top-level key an overlay may carry to the decoder
// that replaces the matching Config section.
//
//nolint:gochecknoglobals // Fixed lookup table.
var overlaySections = map[string]func(*Config, *yaml.Node) error{
	"version":     replaceSection(func(c *Config) *string { return &c.Version }),
	"output":      replaceSection(func(c *Config) *OutputConfig { return &c.Output }),
	"calculation": replaceSection(func(c *Config) *CalculationConfig { return &c.Calculation }),
	"logging":     replaceSection(func(c *Config) *LoggingConfig { return &c.Logging }),
}

// replaceSection decodes a node into a zero T and assigns it to the field,
// so keys missing from the overlay section fall back to zero values rather
// than to what the target held.
func replaceSection[T any](field func(*Config) *T) func(*Config, *yaml.Node) error {
	return func(c *Config, node *yaml.Node) error {
		var v T
		if err := node.Decode(&v); err != nil {
			return err
		}
		*field(c) = v
		return nil
	}
}

// ShallowMergeYAML applies the overlay file at overlayPath to target, one
// top-level section at a time. A section named in the overlay replaces the
// whole section of target; other sections and unknown keys are left alone.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var doc yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}
	if len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	switch {
	case root.Kind == yaml.ScalarNode && root.Tag == "!!null":
		return nil
	case root.Kind != yaml.MappingNode:
		return fmt.Errorf("parsing overlay YAML from %s: top level is not a mapping", overlayPath)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		apply, ok := overlaySections[key]
		if !ok {
			continue
		}
		if err = apply(target, root.Content[i+1]); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}
