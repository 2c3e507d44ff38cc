// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides structured logging for helperx.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

// Package log provides structured, levelled logging backed by zerolog.
//
// Loggers are values you derive from: WithLevel, WithFormat, WithOutput,
// WithName and WithField(s) each return a new logger and leave the receiver
// untouched, so a logger can be shared between goroutines freely.
//
// Usage:
//
//	import hxlog "github.com/msto63/helperx/core/log"
//
//	logger := hxlog.New().
//	    WithLevel(hxlog.LevelDebug).
//	    WithField("component", "include")
//
//	logger.Debug("include file loaded", hxlog.Field("path", path))
//	logger.ErrorWithErr("include failed", err)
//
// Discard returns a logger that writes nothing; the include loader uses it
// to implement AndIgnoreOutput.
package log
