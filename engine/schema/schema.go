package schema

// MaxElements is the maximum number of elements a single declaration may
// carry. The bound is arbitrary but enforced so oversized declarations fail
// at generation time instead of producing unwieldy files.
const MaxElements = 1024

// Access controls how element constants are named in the generated package.
type Access string

const (
	// AccessQualified prefixes every element constant with the enum name
	// (e.g. StatusIdle).
	AccessQualified Access = "qualified"
	// AccessUnqualified injects element constants into the package scope
	// under their bare names (e.g. Idle).
	AccessUnqualified Access = "unqualified"
)

// Defaults carries manifest-level settings merged into every declaration
// that does not override them.
type Defaults struct {
	Type   string `yaml:"type"`
	Index  string `yaml:"index"`
	Access Access `yaml:"access" validate:"omitempty,oneof=qualified unqualified"`
}

// Manifest is one enum manifest file: a target package plus an ordered list
// of declarations.
type Manifest struct {
	// Package is the Go package the generated file belongs to.
	Package string `yaml:"package" validate:"required"`
	// Output optionally overrides the generated file name. Defaults to
	// "<package>_enum.go".
	Output string `yaml:"output"`
	// Defaults apply to every declaration unless overridden per enum.
	Defaults Defaults `yaml:"defaults"`
	// Enums lists the declarations in file order.
	Enums []*Declaration `yaml:"enums" validate:"min=1,dive,required"`

	// Source is the manifest path, recorded for diagnostics and the
	// generated-file header. Not part of the YAML surface.
	Source string `yaml:"-"`
}

// Declaration is one enum: a name, type metadata and an ordered flat list of
// name/value pairs.
type Declaration struct {
	Name string `yaml:"name" validate:"required"`
	// Type is the underlying value type. Defaults to uint64.
	Type string `yaml:"type"`
	// Index is the positional index type used by At, Ordinal and Iterate.
	// Defaults to int.
	Index string `yaml:"index"`
	// Access selects qualified or unqualified constant naming. Defaults to
	// qualified.
	Access Access `yaml:"access" validate:"omitempty,oneof=qualified unqualified"`
	// Pairs is the flat alternating identifier/value list. An odd number of
	// entries is a structural error.
	Pairs []any `yaml:"pairs" validate:"required"`

	// Elements is derived from Pairs during normalization.
	Elements []Element `yaml:"-"`
}

// Element is one resolved (identifier, value) pair.
type Element struct {
	// Name is the identifier exactly as declared.
	Name string
	// GoName is the exported constant-name fragment derived from Name.
	GoName string
	// Value is the element value, already range-checked against the
	// declaration's underlying type.
	Value Value
}

// Size returns the number of declared elements.
func (d *Declaration) Size() int {
	return len(d.Elements)
}

// Qualified reports whether element constants carry the enum-name prefix.
func (d *Declaration) Qualified() bool {
	return d.Access != AccessUnqualified
}

// ConstName returns the generated constant name for the given element.
func (d *Declaration) ConstName(e *Element) string {
	if d.Qualified() {
		return d.Name + e.GoName
	}
	return e.GoName
}
