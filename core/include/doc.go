// File: doc.go
// Title: Package Documentation for include
// Description: Package include loads data include files in isolated scopes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

// Package include loads TOML, YAML and JSON data files into fresh maps.
//
// The format is chosen from the file extension (.toml, .yaml/.yml, .json).
// Every load decodes into a newly allocated map, so callers never see state
// left behind by an earlier include. Three variants are provided:
//
//	data, err := include.InCleanScope("settings.toml")   // plain load
//	data := include.AndIgnoreErrors("optional.yaml")     // nil on any failure
//	data, err := include.AndIgnoreOutput("noisy.json")   // no diagnostics
//
// Diagnostics are warnings for recoverable oddities: an empty file decodes
// to an empty map, and a document whose root is not a table (a YAML list or
// a bare JSON value) is returned under the key "value".
//
// Errors are *error.Error values from core/error carrying CodeNotFound,
// CodeUnsupportedFormat, CodeParseError or CodeIncludeFailed.
//
// A Loader binds a logger; the package-level functions use a loader that
// writes to the default logger of core/log.
package include
