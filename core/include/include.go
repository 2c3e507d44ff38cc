// File: include.go
// Title: Scoped Data File Includes
// Description: Loads TOML, YAML and JSON include files into fresh maps with
//              three scoping variants: plain, error-suppressing and
//              output-suppressing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package include

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	hxerror "github.com/msto63/helperx/core/error"
	hxlog "github.com/msto63/helperx/core/log"
	"github.com/msto63/helperx/utils/stringx"
)

// Format identifies the encoding of an include file
type Format int

const (
	// FormatUnknown marks an unsupported file extension
	FormatUnknown Format = iota

	// FormatTOML is selected by .toml
	FormatTOML

	// FormatYAML is selected by .yaml and .yml
	FormatYAML

	// FormatJSON is selected by .json
	FormatJSON
)

// RootKey holds the decoded document when its root is not a table
const RootKey = "value"

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file extension to a Format
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// Loader reads include files. The zero value logs through the default
// logger.
type Loader struct {
	logger *hxlog.Logger
}

// NewLoader creates a loader that reports diagnostics to logger. A nil
// logger means the package default.
func NewLoader(logger *hxlog.Logger) *Loader {
	return &Loader{logger: logger}
}

func (l *Loader) log() *hxlog.Logger {
	if l == nil || l.logger == nil {
		return hxlog.GetDefault()
	}
	return l.logger
}

// InCleanScope decodes the file at path into a newly allocated map. No
// state is shared between calls.
func (l *Loader) InCleanScope(path string) (map[string]any, error) {
	return load(path, l.log())
}

// AndIgnoreErrors is InCleanScope with every failure, decoder panics
// included, turned into a nil result. Nothing is logged.
func (l *Loader) AndIgnoreErrors(path string) (data map[string]any) {
	defer func() {
		if recover() != nil {
			data = nil
		}
	}()
	data, err := load(path, hxlog.Discard())
	if err != nil {
		return nil
	}
	return data
}

// AndIgnoreOutput is InCleanScope with diagnostics discarded. Errors are
// still returned.
func (l *Loader) AndIgnoreOutput(path string) (map[string]any, error) {
	return load(path, hxlog.Discard())
}

func load(path string, logger *hxlog.Logger) (map[string]any, error) {
	if stringx.IsBlank(path) {
		return nil, hxerror.New("include path cannot be empty").
			WithCode(hxerror.CodeInvalidInput).
			WithOperation("include.load")
	}

	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, hxerror.Newf("unsupported include format: %s", filepath.Ext(path)).
			WithCode(hxerror.CodeUnsupportedFormat).
			WithOperation("include.load").
			WithDetail("path", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		code := hxerror.CodeIncludeFailed
		if errors.Is(err, fs.ErrNotExist) {
			code = hxerror.CodeNotFound
		}
		return nil, hxerror.Wrap(err, "failed to read include file").
			WithCode(code).
			WithOperation("include.load").
			WithDetail("path", path)
	}

	logger.Debug("loading include file", hxlog.Fields{"path": path, "format": format.String()})

	if len(bytes.TrimSpace(content)) == 0 {
		logger.Warn("empty include file", hxlog.Field("path", path))
		return map[string]any{}, nil
	}

	data, wrapped, err := decode(content, format)
	if err != nil {
		return nil, hxerror.Wrap(err, "failed to parse include file").
			WithOperation("include.load").
			WithDetail("path", path)
	}
	if wrapped {
		logger.Warn("non-table root wrapped under "+RootKey, hxlog.Field("path", path))
	}
	return data, nil
}

// Decode parses content into a fresh map. A document whose root is not a
// table (a YAML list, a JSON number, ...) is returned under RootKey.
func Decode(content []byte, format Format) (map[string]any, error) {
	data, _, err := decode(content, format)
	return data, err
}

// decode reports whether the root had to be wrapped under RootKey
func decode(content []byte, format Format) (map[string]any, bool, error) {
	var root any
	switch format {
	case FormatTOML:
		var table map[string]any
		if err := toml.Unmarshal(content, &table); err != nil {
			return nil, false, parseError(err, format)
		}
		if table == nil {
			table = map[string]any{}
		}
		root = table
	case FormatYAML:
		if err := yaml.Unmarshal(content, &root); err != nil {
			return nil, false, parseError(err, format)
		}
	case FormatJSON:
		if err := json.Unmarshal(content, &root); err != nil {
			return nil, false, parseError(err, format)
		}
	default:
		return nil, false, hxerror.Newf("unsupported include format: %s", format).
			WithCode(hxerror.CodeUnsupportedFormat).
			WithOperation("include.Decode")
	}

	switch v := root.(type) {
	case map[string]any:
		return v, false, nil
	case nil:
		return map[string]any{}, false, nil
	default:
		return map[string]any{RootKey: v}, true, nil
	}
}

func parseError(err error, format Format) *hxerror.Error {
	return hxerror.Wrap(err, fmt.Sprintf("%s parse error", strings.ToUpper(format.String()))).
		WithCode(hxerror.CodeParseError).
		WithOperation("include.Decode").
		WithDetail("format", format.String())
}

var defaultLoader = &Loader{}

// InCleanScope loads path with the default loader
func InCleanScope(path string) (map[string]any, error) {
	return defaultLoader.InCleanScope(path)
}

// AndIgnoreErrors loads path with the default loader, returning nil on any
// failure
func AndIgnoreErrors(path string) map[string]any {
	return defaultLoader.AndIgnoreErrors(path)
}

// AndIgnoreOutput loads path with the default loader and no diagnostics
func AndIgnoreOutput(path string) (map[string]any, error) {
	return defaultLoader.AndIgnoreOutput(path)
}
