package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := RootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validManifest = `package: status
enums:
  - name: Status
    type: uint32
    pairs: [idle, 0, running, 1, done, 2]
`

func TestRootCmd(t *testing.T) {
	t.Run("Should register all subcommands", func(t *testing.T) {
		root := RootCmd()
		names := make(map[string]bool)
		for _, sub := range root.Commands() {
			names[sub.Name()] = true
		}
		for _, want := range []string{"generate", "check", "watch", "init", "version"} {
			assert.True(t, names[want], "missing subcommand %s", want)
		}
	})
}

func TestGenerateCmd(t *testing.T) {
	t.Run("Should generate a Go file from a manifest", func(t *testing.T) {
		dir := t.TempDir()
		manifest := writeManifest(t, dir, "enums.yaml", validManifest)
		outDir := filepath.Join(dir, "gen")

		_, err := runCommand(t, "generate", "--input", manifest, "--output", outDir)

		require.NoError(t, err)
		generated, err := os.ReadFile(filepath.Join(outDir, "status_enum.go"))
		require.NoError(t, err)
		assert.Contains(t, string(generated), "type Status uint32")
		assert.Contains(t, string(generated), "const StatusCount = 3")
	})

	t.Run("Should print source without writing in dry-run mode", func(t *testing.T) {
		dir := t.TempDir()
		manifest := writeManifest(t, dir, "enums.yaml", validManifest)
		outDir := filepath.Join(dir, "gen")

		out, err := runCommand(t, "generate", "--input", manifest, "--output", outDir, "--dry-run")

		require.NoError(t, err)
		assert.Contains(t, out, "type Status uint32")
		_, statErr := os.Stat(outDir)
		assert.True(t, os.IsNotExist(statErr), "dry-run must not write files")
	})

	t.Run("Should fail when no manifest matches", func(t *testing.T) {
		dir := t.TempDir()

		_, err := runCommand(t, "generate", "--input", filepath.Join(dir, "missing.yaml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no manifest files match")
	})

	t.Run("Should surface validation errors from manifests", func(t *testing.T) {
		dir := t.TempDir()
		manifest := writeManifest(t, dir, "enums.yaml", "package: bad\nenums:\n  - name: Odd\n    pairs: [a, 1, b]\n")

		_, err := runCommand(t, "generate", "--input", manifest, "--output", dir)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed pair list")
	})
}

func TestCheckCmd(t *testing.T) {
	t.Run("Should accept valid manifests", func(t *testing.T) {
		dir := t.TempDir()
		manifest := writeManifest(t, dir, "enums.yaml", validManifest)

		_, err := runCommand(t, "check", "--input", manifest)

		require.NoError(t, err)
	})

	t.Run("Should reject duplicate identifiers", func(t *testing.T) {
		dir := t.TempDir()
		manifest := writeManifest(t, dir, "enums.yaml", "package: dup\nenums:\n  - name: Dup\n    pairs: [a, 1, a, 2]\n")

		_, err := runCommand(t, "check", "--input", manifest)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate element identifier")
	})
}

func TestInitCmd(t *testing.T) {
	t.Run("Should scaffold a manifest that validates", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "enums.yaml")

		_, err := runCommand(t, "init", path, "--package", "kinds")
		require.NoError(t, err)

		_, err = runCommand(t, "check", "--input", path)
		require.NoError(t, err)
	})

	t.Run("Should refuse to overwrite an existing manifest", func(t *testing.T) {
		dir := t.TempDir()
		path := writeManifest(t, dir, "enums.yaml", validManifest)

		_, err := runCommand(t, "init", path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestVersionCmd(t *testing.T) {
	t.Run("Should print build information", func(t *testing.T) {
		out, err := runCommand(t, "version")

		require.NoError(t, err)
		assert.Contains(t, out, "enumgen")
	})
}
