// Package notes implements the scoped, per-analysis note buffer used by
// every entry point in the core: method overrides, cap saturations, and
// non-convergence are informational, not errors, and are collected here for
// the lifetime of a single analysis call (see spec §5, §7, §9).
package notes

import "github.com/cpmech/gosl/io"

// Buffer accumulates notes for one analysis call and de-duplicates
// first-hit floor warnings so a tight solver loop does not flood the
// result with repeats of the same guard.
type Buffer struct {
	lines  []string
	seen   map[string]bool
}

// NewBuffer returns an empty, ready-to-use Buffer.
func NewBuffer() *Buffer {
	return &Buffer{seen: make(map[string]bool)}
}

// Add appends a formatted note unconditionally.
func (b *Buffer) Add(format string, args ...interface{}) {
	b.lines = append(b.lines, io.Sf(format, args...))
}

// AddOnce appends a formatted note only the first time this exact key is
// seen within the buffer's lifetime; used for floor/guard warnings that
// would otherwise repeat once per node or per iteration.
func (b *Buffer) AddOnce(key, format string, args ...interface{}) {
	if b.seen[key] {
		return
	}
	b.seen[key] = true
	b.Add(format, args...)
}

// Lines returns the accumulated notes, owned by the caller.
func (b *Buffer) Lines() []string {
	if len(b.lines) == 0 {
		return nil
	}
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}
