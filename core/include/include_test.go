// File: include_test.go
// Title: Unit Tests for Scoped Includes
// Description: Tests for format detection, decoding and the three include
//              variants using temporary files.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package include

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hxerror "github.com/msto63/helperx/core/error"
	hxlog "github.com/msto63/helperx/core/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func bufferLoader() (*Loader, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := hxlog.NewWithConfig(hxlog.Config{Level: hxlog.LevelDebug, Output: &buf})
	return NewLoader(logger), &buf
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"a.toml", FormatTOML},
		{"dir/a.YAML", FormatYAML},
		{"a.yml", FormatYAML},
		{"a.json", FormatJSON},
		{"a.ini", FormatUnknown},
		{"noext", FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.path))
		})
	}
}

func TestInCleanScope_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "a.toml", "name = \"demo\"\n[db]\nhost = \"localhost\"\nport = 5432\n"},
		{"yaml", "a.yaml", "name: demo\ndb:\n  host: localhost\n  port: 5432\n"},
		{"json", "a.json", `{"name": "demo", "db": {"host": "localhost", "port": 5432}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := bufferLoader()
			data, err := loader.InCleanScope(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, "demo", data["name"])
			db, ok := data["db"].(map[string]any)
			require.True(t, ok, "db is %T", data["db"])
			assert.Equal(t, "localhost", db["host"])
			assert.EqualValues(t, 5432, db["port"])
		})
	}
}

func TestInCleanScope_FreshMapPerCall(t *testing.T) {
	loader, _ := bufferLoader()
	path := writeFile(t, "a.toml", "x = 1\n")

	first, err := loader.InCleanScope(path)
	require.NoError(t, err)
	first["leak"] = true

	second, err := loader.InCleanScope(path)
	require.NoError(t, err)
	assert.NotContains(t, second, "leak")
}

func TestInCleanScope_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
		code hxerror.Code
	}{
		{"blank path", " ", hxerror.CodeInvalidInput},
		{"unsupported", writeFile(t, "a.ini", "x=1"), hxerror.CodeUnsupportedFormat},
		{"missing", filepath.Join(dir, "missing.toml"), hxerror.CodeNotFound},
		{"bad toml", writeFile(t, "bad.toml", "x = = 1"), hxerror.CodeParseError},
		{"bad yaml", writeFile(t, "bad.yaml", "a: [1, 2"), hxerror.CodeParseError},
		{"bad json", writeFile(t, "bad.json", "{"), hxerror.CodeParseError},
		{"directory", func() string {
			p := filepath.Join(dir, "sub.json")
			require.NoError(t, os.Mkdir(p, 0o755))
			return p
		}(), hxerror.CodeIncludeFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := bufferLoader()
			data, err := loader.InCleanScope(tt.path)
			require.Error(t, err)
			assert.Nil(t, data)
			assert.Equal(t, tt.code, hxerror.GetCode(err))
		})
	}
}

func TestInCleanScope_EmptyFileWarns(t *testing.T) {
	loader, buf := bufferLoader()
	data, err := loader.InCleanScope(writeFile(t, "empty.yaml", "  \n"))
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.NotNil(t, data)
	assert.Contains(t, buf.String(), "empty include file")
}

func TestInCleanScope_NonTableRoot(t *testing.T) {
	loader, buf := bufferLoader()
	data, err := loader.InCleanScope(writeFile(t, "list.json", "[1, 2, 3]"))
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, data[RootKey])
	assert.Contains(t, buf.String(), "non-table root")
}

func TestAndIgnoreErrors(t *testing.T) {
	loader, buf := bufferLoader()

	assert.Nil(t, loader.AndIgnoreErrors(filepath.Join(t.TempDir(), "missing.toml")))
	assert.Nil(t, loader.AndIgnoreErrors(writeFile(t, "bad.json", "{")))
	assert.NotNil(t, loader.AndIgnoreErrors(writeFile(t, "empty.json", "")), "empty file is not an error")

	data := loader.AndIgnoreErrors(writeFile(t, "ok.yaml", "k: v\n"))
	assert.Equal(t, map[string]any{"k": "v"}, data)
	assert.Empty(t, buf.String())
}

func TestAndIgnoreOutput(t *testing.T) {
	loader, buf := bufferLoader()

	data, err := loader.AndIgnoreOutput(writeFile(t, "scalar.yaml", "42\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{RootKey: 42}, data)

	_, err = loader.AndIgnoreOutput(writeFile(t, "bad.toml", "["))
	assert.True(t, hxerror.HasCode(err, hxerror.CodeParseError))
	assert.Empty(t, buf.String())
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	previous := hxlog.GetDefault()
	hxlog.SetDefault(hxlog.NewWithConfig(hxlog.Config{Level: hxlog.LevelWarn, Output: &buf}))
	t.Cleanup(func() { hxlog.SetDefault(previous) })

	path := writeFile(t, "empty.toml", "")
	data, err := InCleanScope(path)
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Contains(t, buf.String(), "empty include file")

	assert.NotNil(t, AndIgnoreErrors(path))
	_, err = AndIgnoreOutput(filepath.Join(t.TempDir(), "none.json"))
	assert.True(t, hxerror.HasCode(err, hxerror.CodeNotFound))
}

func TestDecode(t *testing.T) {
	data, err := Decode([]byte("# only a comment\n"), FormatTOML)
	require.NoError(t, err)
	assert.NotNil(t, data)

	_, err = Decode([]byte("x"), FormatUnknown)
	assert.True(t, hxerror.HasCode(err, hxerror.CodeUnsupportedFormat))
}
