package codegen

// enumTemplate renders one manifest into one Go source file. The output is
// passed through go/format before it is written, so the template only has to
// be syntactically correct, not pretty.
const enumTemplate = `// Code generated by enumgen {{ .Version }}. DO NOT EDIT.
// Source: {{ .Source }}
{{- if .Header }}
// {{ .Header }}
{{- end }}

package {{ .Package }}

import "fmt"
{{ range .Enums }}
{{- $enum := . }}
{{- $values := printf "%sValues" (untitle .Name) }}
// {{ .Name }} is an enumeration backed by {{ .Type }}. Comparisons and
// conversions to {{ .Type }} operate on the stored value directly.
type {{ .Name }} {{ .Type }}

const (
{{- range .Elements }}
	// {{ .ConstName }} is the declared element {{ .Name }}.
	{{ .ConstName }} {{ $enum.Name }} = {{ .Literal }}
{{- end }}
)

// {{ .Name }}Count is the number of declared {{ .Name }} elements.
const {{ .Name }}Count = {{ .Count }}

// {{ $values }} holds the declared element values in declaration order.
var {{ $values }} = [{{ .Name }}Count]{{ .Name }}{ {{- join ", " .ConstNames -}} }

// Default{{ .Name }} returns the value of the first declared element. This
// deliberately differs from the zero value of {{ .Name }}: a default always
// denotes a declared element.
func Default{{ .Name }}() {{ .Name }} {
	return {{ $values }}[0]
}

// {{ .Name }}At returns the value of the element at position i in
// declaration order. It panics when i is outside [0, {{ .Name }}Count).
func {{ .Name }}At(i {{ .Index.Name }}) {{ .Name }} {
	if {{ if .Index.Signed }}i < 0 || {{ end }}i >= {{ .Name }}Count {
		panic(fmt.Sprintf("{{ $.Package }}: {{ .Name }}At(%d): index out of range [0, {{ .Count }})", i))
	}
	return {{ $values }}[i]
}

// {{ .Name }}Ordinal returns the position of the first declared element
// whose value equals v. When several elements share a value, the
// first-declared one wins. It panics when no element has value v.
func {{ .Name }}Ordinal(v {{ .Name }}) {{ .Index.Name }} {
	for i := {{ .Index.Name }}(0); i < {{ .Name }}Count; i++ {
		if {{ $values }}[i] == v {
			return i
		}
	}
	panic(fmt.Sprintf("{{ $.Package }}: {{ .Name }}Ordinal: no element with value %d", v))
}

// {{ .Name }}Iterate invokes op once per position, starting at begin and
// stepping by inc until reaching end (exclusive), strictly in step order.
// Invocation order is part of the contract: side effects in op observe the
// same ordering as a manually unrolled sequence of calls.
//
// begin == end performs no invocations. inc must be nonzero.
{{- if .Index.Signed }}
// A negative inc iterates downward; end is then still exclusive and may be
// as low as -1 to include position 0.
{{- end }}
// Any other bound outside the declared range panics before the first
// invocation.
func {{ .Name }}Iterate(begin, end, inc {{ .Index.Name }}, op func(i {{ .Index.Name }}, v {{ .Name }})) {
	if inc == 0 {
		panic("{{ $.Package }}: {{ .Name }}Iterate: increment must be nonzero")
	}
	if begin == end {
		return
	}
{{- if .Index.Signed }}
	if inc > 0 {
		if begin < 0 || begin > end || end > {{ .Name }}Count {
			panic(fmt.Sprintf("{{ $.Package }}: {{ .Name }}Iterate(%d, %d, %d): bounds out of range [0, {{ .Count }}]", begin, end, inc))
		}
		for i := begin; i < end; i += inc {
			op(i, {{ $values }}[i])
		}
		return
	}
	if end < -1 || end > begin || begin >= {{ .Name }}Count {
		panic(fmt.Sprintf("{{ $.Package }}: {{ .Name }}Iterate(%d, %d, %d): bounds out of range [0, {{ .Count }}]", begin, end, inc))
	}
	for i := begin; i > end; i += inc {
		op(i, {{ $values }}[i])
	}
{{- else }}
	if begin > end || end > {{ .Name }}Count {
		panic(fmt.Sprintf("{{ $.Package }}: {{ .Name }}Iterate(%d, %d, %d): bounds out of range [0, {{ .Count }}]", begin, end, inc))
	}
	for i := begin; i < end; i += inc {
		op(i, {{ $values }}[i])
	}
{{- end }}
}
{{ end -}}
`
