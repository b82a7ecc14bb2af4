// SPDX-License-Identifier: MIT

// Package boolmatrix: functional configuration for BoolMatrix constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Fill value only applies to New; NewFromData always copies the caller's cells.
//   - Strict shape mode only applies to NewFromData. The default keeps the
//     silent clamp: requested (h, w) is cut down to fit the supplied data.
//   - The observer is a logr.Logger; the zero default is logr.Discard(), so
//     the package never touches process-wide logging state.
package boolmatrix

import "github.com/go-logr/logr"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFill is the uniform value written by New.
	DefaultFill = false

	// DefaultStrictShape keeps the compatible silent-clamp behavior of NewFromData.
	DefaultStrictShape = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	fill     bool        // DefaultFill
	strict   bool        // DefaultStrictShape
	observer logr.Logger // logr.Discard() unless WithObserver
}

// WithFill sets the uniform value New fills the matrix with.
// Complexity: O(1).
func WithFill(v bool) Option {
	return func(o *Options) { o.fill = v }
}

// WithStrictShape makes NewFromData fail with ErrShapeMismatch instead of
// silently truncating when the supplied data does not match the requested
// shape exactly.
//
// AI-Hints:
//   - Use when input comes from files or the network; silent truncation can
//     hide a caller bug.
func WithStrictShape() Option {
	return func(o *Options) { o.strict = true }
}

// WithObserver injects a logger that receives construction diagnostics
// (currently: a V(1) message whenever NewFromData truncates input).
func WithObserver(l logr.Logger) Option {
	return func(o *Options) { o.observer = l }
}

// gatherOptions resolves defaults and applies user setters in order
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		fill:     DefaultFill,
		strict:   DefaultStrictShape,
		observer: logr.Discard(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
