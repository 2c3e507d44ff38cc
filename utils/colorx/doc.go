// File: doc.go
// Title: Package Documentation for colorx
// Description: Package colorx converts between hex colours and RGB triples.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial documentation

// Package colorx converts between hex colour notation and RGB triples.
//
// An RGB value is three nullable channels. Hex2RGB returns the all-null
// triple Null for anything it cannot decode, and RGB2Hex returns black for
// any triple it cannot encode, so neither needs an error result:
//
//	colorx.Hex2RGB("#f80")                       // [255 136 0]
//	colorx.Hex2RGB("zzz")                        // [null null null]
//	colorx.RGB2Hex(colorx.NewRGB(300, 0, 0), true) // "#000000"
//
// Conversions to and from github.com/lucasb-eyer/go-colorful are available
// through RGB.Color and FromColor for callers that need blending or other
// colour-space operations.
package colorx
