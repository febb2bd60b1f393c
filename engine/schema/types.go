package schema

import (
	"fmt"
	"sort"
	"strings"
)

// TypeInfo describes one of the integer types a declaration may use as its
// underlying value type or its index type.
type TypeInfo struct {
	// Name is the Go spelling of the type.
	Name string
	// Signed reports whether the type admits negative values.
	Signed bool
	// Bits is the value width. The int and uint aliases are treated as
	// 64-bit so range checks stay platform-independent.
	Bits int
}

const (
	// DefaultValueType is used when a declaration does not name an
	// underlying type.
	DefaultValueType = "uint64"
	// DefaultIndexType is used when a declaration does not name an index
	// type.
	DefaultIndexType = "int"
)

var valueTypes = map[string]TypeInfo{
	"uint":   {Name: "uint", Signed: false, Bits: 64},
	"uint8":  {Name: "uint8", Signed: false, Bits: 8},
	"uint16": {Name: "uint16", Signed: false, Bits: 16},
	"uint32": {Name: "uint32", Signed: false, Bits: 32},
	"uint64": {Name: "uint64", Signed: false, Bits: 64},
	"int":    {Name: "int", Signed: true, Bits: 64},
	"int8":   {Name: "int8", Signed: true, Bits: 8},
	"int16":  {Name: "int16", Signed: true, Bits: 16},
	"int32":  {Name: "int32", Signed: true, Bits: 32},
	"int64":  {Name: "int64", Signed: true, Bits: 64},
	"byte":   {Name: "byte", Signed: false, Bits: 8},
	"rune":   {Name: "rune", Signed: true, Bits: 32},
}

var indexTypes = map[string]TypeInfo{
	"int":    {Name: "int", Signed: true, Bits: 64},
	"int32":  {Name: "int32", Signed: true, Bits: 32},
	"int64":  {Name: "int64", Signed: true, Bits: 64},
	"uint32": {Name: "uint32", Signed: false, Bits: 32},
	"uint64": {Name: "uint64", Signed: false, Bits: 64},
}

// ValueType resolves an underlying value type by name.
func ValueType(name string) (TypeInfo, error) {
	if name == "" {
		name = DefaultValueType
	}
	info, ok := valueTypes[name]
	if !ok {
		return TypeInfo{}, fmt.Errorf("unknown value type %q (supported: %s)", name, supportedNames(valueTypes))
	}
	return info, nil
}

// IndexType resolves an index/counter type by name.
func IndexType(name string) (TypeInfo, error) {
	if name == "" {
		name = DefaultIndexType
	}
	info, ok := indexTypes[name]
	if !ok {
		return TypeInfo{}, fmt.Errorf("unknown index type %q (supported: %s)", name, supportedNames(indexTypes))
	}
	return info, nil
}

func supportedNames(types map[string]TypeInfo) string {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
