package schema

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	packageNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	enumNamePattern    = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	elementNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

var structValidate = validator.New()

// validate runs struct-tag validation plus the structural rules that tags
// cannot express: identifier shape, uniqueness, type resolution and value
// ranges. Errors name the offending declaration.
func (m *Manifest) validate() error {
	if err := structValidate.Struct(m); err != nil {
		return fmt.Errorf("invalid manifest structure: %w", err)
	}
	if !packageNamePattern.MatchString(m.Package) || goKeywords[m.Package] {
		return fmt.Errorf("invalid package name %q", m.Package)
	}
	if err := m.validateOutput(); err != nil {
		return err
	}
	seenEnums := make(map[string]string, len(m.Enums))
	// Unqualified constants land in the package scope, so their names must
	// be unique across the whole manifest, not just within one declaration.
	packageScope := make(map[string]string)
	for _, decl := range m.Enums {
		if err := decl.validate(); err != nil {
			return fmt.Errorf("enum %q: %w", decl.Name, err)
		}
		if prev, dup := seenEnums[decl.Name]; dup {
			return fmt.Errorf("enum %q: name already used by enum %q", decl.Name, prev)
		}
		seenEnums[decl.Name] = decl.Name
		packageScope[strings.ToLower(decl.Name)] = decl.Name
		// The generated surface claims these identifiers too.
		for _, reserved := range []string{
			decl.Name + "Count",
			"Default" + decl.Name,
			decl.Name + "At",
			decl.Name + "Ordinal",
			decl.Name + "Iterate",
		} {
			packageScope[strings.ToLower(reserved)] = reserved
		}
	}
	for _, decl := range m.Enums {
		for i := range decl.Elements {
			constName := decl.ConstName(&decl.Elements[i])
			key := strings.ToLower(constName)
			if prev, dup := packageScope[key]; dup {
				return fmt.Errorf(
					"enum %q: element %q: generated name %s collides with %s",
					decl.Name, decl.Elements[i].Name, constName, prev,
				)
			}
			packageScope[key] = constName
		}
	}
	return nil
}

func (m *Manifest) validateOutput() error {
	if m.Output == "" {
		return nil
	}
	clean := filepath.Clean(m.Output)
	if strings.Contains(clean, "..") || filepath.IsAbs(clean) || filepath.Dir(clean) != "." {
		return fmt.Errorf("invalid output file name %q: must be a bare file name", m.Output)
	}
	if !strings.HasSuffix(clean, ".go") {
		return fmt.Errorf("invalid output file name %q: must end in .go", m.Output)
	}
	return nil
}

func (d *Declaration) validate() error {
	if !enumNamePattern.MatchString(d.Name) {
		return fmt.Errorf("invalid name: must be an exported Go identifier")
	}
	valueType, err := ValueType(d.Type)
	if err != nil {
		return err
	}
	if _, err := IndexType(d.Index); err != nil {
		return err
	}
	// Case-insensitive uniqueness: constant-name derivation capitalizes, so
	// "red" and "Red" would otherwise expand to the same constant.
	seen := make(map[string]string, len(d.Elements))
	for i := range d.Elements {
		e := &d.Elements[i]
		if !elementNamePattern.MatchString(e.Name) {
			return fmt.Errorf("invalid element identifier %q", e.Name)
		}
		key := strings.ToLower(e.GoName)
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("duplicate element identifier %q (conflicts with %q)", e.Name, prev)
		}
		seen[key] = e.Name
		if !e.Value.FitsIn(valueType) {
			return fmt.Errorf("element %q: value %s out of range for %s", e.Name, e.Value, valueType.Name)
		}
	}
	return nil
}
