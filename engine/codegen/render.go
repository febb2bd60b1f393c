package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/compozy/enumgen/engine/schema"
)

// fileData is the template context for one generated file.
type fileData struct {
	Version string
	Source  string
	Header  string
	Package string
	Enums   []*enumData
}

// enumData is the template context for one declaration.
type enumData struct {
	Name       string
	Type       string
	Index      schema.TypeInfo
	Count      int
	ConstNames []string
	Elements   []elemData
}

// elemData is the template context for one element constant.
type elemData struct {
	Name      string
	ConstName string
	Literal   string
}

// templateFuncMap returns the function map available to the enum template:
// the sprig text functions plus nothing else, matching the scaffolding
// generator.
func templateFuncMap() template.FuncMap {
	return sprig.TxtFuncMap()
}

var enumTmpl = template.Must(
	template.New("enum").Option("missingkey=error").Funcs(templateFuncMap()).Parse(enumTemplate),
)

// Render expands a manifest into gofmt-formatted Go source. The manifest
// must already be normalized (schema.Parse guarantees this); a formatting
// failure therefore indicates a bug in the expansion and is returned as an
// error rather than shipped.
func (g *Generator) Render(manifest *schema.Manifest) ([]byte, error) {
	data, err := g.buildFileData(manifest)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := enumTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to expand manifest %s: %w", manifest.Source, err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("expansion of %s produced invalid Go: %w", manifest.Source, err)
	}
	return formatted, nil
}

func (g *Generator) buildFileData(manifest *schema.Manifest) (*fileData, error) {
	data := &fileData{
		Version: g.version,
		Source:  manifest.Source,
		Header:  g.header,
		Package: manifest.Package,
		Enums:   make([]*enumData, 0, len(manifest.Enums)),
	}
	for _, decl := range manifest.Enums {
		valueType, err := schema.ValueType(decl.Type)
		if err != nil {
			return nil, fmt.Errorf("enum %q: %w", decl.Name, err)
		}
		indexType, err := schema.IndexType(decl.Index)
		if err != nil {
			return nil, fmt.Errorf("enum %q: %w", decl.Name, err)
		}
		enum := &enumData{
			Name:       decl.Name,
			Type:       valueType.Name,
			Index:      indexType,
			Count:      decl.Size(),
			ConstNames: make([]string, 0, decl.Size()),
			Elements:   make([]elemData, 0, decl.Size()),
		}
		for i := range decl.Elements {
			e := &decl.Elements[i]
			constName := decl.ConstName(e)
			enum.ConstNames = append(enum.ConstNames, constName)
			enum.Elements = append(enum.Elements, elemData{
				Name:      e.Name,
				ConstName: constName,
				Literal:   e.Value.String(),
			})
		}
		data.Enums = append(data.Enums, enum)
	}
	return data, nil
}
