package schema

import (
	"fmt"
	"strings"
	"unicode"

	"dario.cat/mergo"
	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// Load reads and parses a manifest file, returning a fully normalized and
// validated Manifest. Every structural problem is reported as an error here;
// a manifest that loads successfully always generates.
func Load(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses manifest bytes. The source name is used in diagnostics and in
// the generated-file header.
func Parse(data []byte, source string) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", source, err)
	}
	manifest.Source = source
	if err := manifest.Normalize(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", source, err)
	}
	return &manifest, nil
}

// Normalize merges manifest defaults into each declaration, expands pair
// lists into elements and validates the result.
func (m *Manifest) Normalize() error {
	defaults := &Declaration{
		Type:   m.Defaults.Type,
		Index:  m.Defaults.Index,
		Access: m.Defaults.Access,
	}
	for _, decl := range m.Enums {
		if decl == nil {
			return fmt.Errorf("empty enum entry")
		}
		if err := mergo.Merge(decl, defaults); err != nil {
			return fmt.Errorf("enum %q: failed to apply defaults: %w", decl.Name, err)
		}
		if err := decl.expandPairs(); err != nil {
			return fmt.Errorf("enum %q: %w", decl.Name, err)
		}
	}
	return m.validate()
}

// expandPairs turns the flat alternating identifier/value list into Elements,
// preserving declaration order.
func (d *Declaration) expandPairs() error {
	if len(d.Pairs) == 0 {
		return fmt.Errorf("declares no elements; at least one identifier/value pair is required")
	}
	if len(d.Pairs)%2 != 0 {
		return fmt.Errorf("malformed pair list: %d entries, identifiers and values must alternate", len(d.Pairs))
	}
	count := len(d.Pairs) / 2
	if count > MaxElements {
		return fmt.Errorf("%d elements exceed the maximum of %d", count, MaxElements)
	}
	d.Elements = make([]Element, 0, count)
	for i := 0; i < len(d.Pairs); i += 2 {
		name, ok := d.Pairs[i].(string)
		if !ok {
			return fmt.Errorf("pair %d: identifier %v (%T) is not a name", i/2, d.Pairs[i], d.Pairs[i])
		}
		value, err := ValueOf(d.Pairs[i+1])
		if err != nil {
			return fmt.Errorf("pair %d (%s): %w", i/2, name, err)
		}
		d.Elements = append(d.Elements, Element{
			Name:   name,
			GoName: exportName(name),
			Value:  value,
		})
	}
	return nil
}

// exportName derives the exported constant-name fragment for an identifier:
// snake_case segments are capitalized and joined (max_value -> MaxValue).
func exportName(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
