// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides the structured error type of helperx.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

// Package error provides a structured error type carrying a Code, a Severity,
// the failed operation and free-form details.
//
// Only the parts of helperx that touch the file system return errors: the
// include loader, the configuration accessor and the CLI. All string, array,
// colour and encoding helpers are total and report bad input through
// documented sentinel values instead.
//
// Because the package name shadows the builtin identifier, import it under
// an alias:
//
//	import hxerror "github.com/msto63/helperx/core/error"
//
//	err := hxerror.New("include file not found").
//	    WithCode(hxerror.CodeNotFound).
//	    WithOperation("include.InCleanScope").
//	    WithDetail("path", path)
//
// Errors compose with the standard library: Unwrap exposes the cause, so
// errors.Is and errors.As see through wrapped chains, and HasCode walks the
// whole chain.
package error
