package codegen

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/compozy/enumgen/engine/schema"
	"github.com/compozy/enumgen/pkg/logger"
	"github.com/compozy/enumgen/pkg/version"
)

// Options configures a Generator.
type Options struct {
	// Fs is the filesystem generated files are written to. Defaults to the
	// OS filesystem; tests substitute an in-memory one.
	Fs afero.Fs
	// Header is an optional extra comment line for every generated file.
	Header string
	// Version overrides the tool version recorded in the generated header.
	Version string
}

// Generator expands enum manifests into Go source files.
type Generator struct {
	fs      afero.Fs
	header  string
	version string
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts *Options) *Generator {
	if opts == nil {
		opts = &Options{}
	}
	g := &Generator{
		fs:      opts.Fs,
		header:  opts.Header,
		version: opts.Version,
	}
	if g.fs == nil {
		g.fs = afero.NewOsFs()
	}
	if g.version == "" {
		g.version = version.GetVersion()
	}
	return g
}

// FileName returns the output file name for a manifest.
func (g *Generator) FileName(manifest *schema.Manifest) string {
	if manifest.Output != "" {
		return manifest.Output
	}
	return manifest.Package + "_enum.go"
}

// Generate renders every manifest and writes the results into outDir.
// Manifests are rendered in parallel; any failure aborts the whole run and
// nothing is reported as generated for that manifest.
func (g *Generator) Generate(ctx context.Context, manifests []*schema.Manifest, outDir string) error {
	log := logger.FromContext(ctx)
	if len(manifests) == 0 {
		return fmt.Errorf("no manifests to generate")
	}
	if err := g.fs.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	// Two manifests resolving to one file would race; reject up front.
	outputs := make(map[string]string, len(manifests))
	for _, manifest := range manifests {
		name := g.FileName(manifest)
		if prev, dup := outputs[name]; dup {
			return fmt.Errorf("manifests %s and %s both write %s", prev, manifest.Source, name)
		}
		outputs[name] = manifest.Source
	}
	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for _, manifest := range manifests {
		group.Go(func() error {
			source, err := g.Render(manifest)
			if err != nil {
				return err
			}
			path := filepath.Join(outDir, g.FileName(manifest))
			if err := afero.WriteFile(g.fs, path, source, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			log.Info("Generated enums", "file", path, "enums", len(manifest.Enums))
			return nil
		})
	}
	return group.Wait()
}
