package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/simple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewValueCommand(t *testing.T) {
	out, err := run(t, "new", "number", "5")
	require.NoError(t, err)
	assert.Equal(t, `{"_":"simple/number","v":5}`, strings.TrimSpace(out))

	out, err = run(t, "new", "number", "5", "--require-type=false")
	require.NoError(t, err)
	assert.Equal(t, `5`, strings.TrimSpace(out))

	out, err = run(t, "new", "integer", "0x10", "-f", "sixteen", "--require-type=false")
	require.NoError(t, err)
	assert.Equal(t, `{"v":16,"f":"sixteen"}`, strings.TrimSpace(out))

	out, err = run(t, "new", "simple/boolean", "yes")
	assert.ErrorIs(t, err, simple.ErrNotConvertible)
	assert.Empty(t, out)

	_, err = run(t, "new", "acme/unknown", "1")
	assert.ErrorIs(t, err, simple.ErrInvalidType)
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `{"a": 1, "b": {"_": "simple/number", "v": "2.5"}}`)
	bad := writeFile(t, dir, "bad.yaml", "a: {_: simple/integer, v: nope}\n")

	out, err := run(t, "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "2 entries ok")

	_, err = run(t, "check", good, bad, filepath.Join(dir, "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, simple.ErrDocumentNotFound)
	var castErr *simple.CastError
	assert.ErrorAs(t, err, &castErr)
}

func TestNormalizeCommand(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "in.yaml", "n:\n  v: \"12\"\n  f: twelve\n")

	out, err := run(t, "normalize", src, "--default-kind", "integer")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": {"_": "simple/integer", "v": 12, "f": "twelve"}}`, out)

	out, err = run(t, "normalize", src, "--default-kind", "integer", "--omit-formatted")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": {"_": "simple/integer", "v": 12}}`, out)

	dst := filepath.Join(dir, "out", "values.toml")
	_, err = run(t, "normalize", src, "--default-kind", "integer", "-o", dst)
	require.NoError(t, err)

	values, err := simple.LoadDocument(dst, simple.Kinds(simple.Integer))
	require.NoError(t, err)
	assert.Equal(t, int64(12), values["n"].Any())
	assert.Equal(t, "twelve", values["n"].String())
}

func TestConfigFileAndBundle(t *testing.T) {
	dir := t.TempDir()
	bundle := writeFile(t, dir, "fr.toml", `cannotConvertToType = "impossible de convertir en %s"`)
	cfgPath := writeFile(t, dir, "simplespec.toml", `
format = "yaml"
default_kind = "boolean"
bundle = "`+filepath.ToSlash(bundle)+`"
`)
	src := writeFile(t, dir, "in.json", `{"flag": "true"}`)

	out, err := run(t, "normalize", src, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "flag:")
	assert.Contains(t, out, "_: simple/boolean")

	_, err = run(t, "new", "boolean", "maybe", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "impossible de convertir en Boolean")

	out, err = run(t, "normalize", src, "--config", cfgPath, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"flag": {"_": "simple/boolean", "v": true}}`, out)
}
