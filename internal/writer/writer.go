// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package writer implements the formatting layer shared by every proto model
// node: an indentation- and comment-aware text emitter on top of a
// line-wrapping sink.
package writer

import (
	"fmt"
	"io"
	"strings"
)

const (
	defaultIndentValue = " "
	defaultLineWidth   = 80
	defaultIndentSize  = 2
)

// Writer turns a stream of Emit/EmitComment/Indent operations into indented
// text. In comment mode every emitted line, including blank ones, carries the
// "//" marker, and soft-wrapped continuations are re-prefixed so multi-line
// comments stay visually contiguous.
//
// Writers are not safe for concurrent use. I/O errors are sticky: the first
// one is reported by every subsequent call and by Flush.
type Writer struct {
	out             *LineWrapper
	indentValue     string
	indentSize      int
	level           int
	trailingNewline bool
	comment         bool
}

func New(out io.Writer) *Writer {
	return NewWithGeometry(out, defaultIndentValue, defaultLineWidth, defaultIndentSize)
}

func NewWithGeometry(out io.Writer, indentValue string, lineWidth int, indentSize int) *Writer {
	w := &Writer{
		out:             NewLineWrapper(out, lineWidth),
		indentValue:     indentValue,
		indentSize:      indentSize,
		trailingNewline: true,
	}
	w.syncWrapPrefix()
	return w
}

// Discard returns a writer that performs all formatting work but produces no
// output. Useful for callers that only want validation side effects.
func Discard() *Writer {
	return New(io.Discard)
}

// Emit writes text at the current indentation. Internal newlines start fresh
// indented lines; empty lines pass through without indentation.
func (w *Writer) Emit(s string) error {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			// Re-apply the comment marker so blank lines inside a
			// comment body keep the comment contiguous.
			if w.comment && w.trailingNewline {
				w.emitIndentation()
				w.append("//")
			}
			w.append("\n")
			w.trailingNewline = true
		}
		if line == "" {
			continue
		}
		if w.trailingNewline {
			w.emitIndentation()
			if w.comment {
				w.append("// ")
			}
		}
		w.append(line)
		w.trailingNewline = false
	}
	return w.out.Err()
}

func (w *Writer) Emitf(format string, args ...any) error {
	return w.Emit(fmt.Sprintf(format, args...))
}

// EmitComment writes each line as a "// " prefixed comment line.
func (w *Writer) EmitComment(lines []string) error {
	for _, line := range lines {
		w.trailingNewline = true // force the "//" prefix
		w.comment = true
		w.syncWrapPrefix()
		err := w.Emit(line)
		if err == nil {
			err = w.Emit("\n")
		}
		w.comment = false
		w.syncWrapPrefix()
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Indent() *Writer {
	w.level += w.indentSize
	w.syncWrapPrefix()
	return w
}

func (w *Writer) Unindent() *Writer {
	if w.level-w.indentSize < 0 {
		panic(fmt.Sprintf("cannot unindent %d from %d", w.indentSize, w.level))
	}
	w.level -= w.indentSize
	w.syncWrapPrefix()
	return w
}

// Flush drains the line-wrapping sink and reports the first I/O error, if
// any. Call once at the end of a render.
func (w *Writer) Flush() error {
	return w.out.Flush()
}

func (w *Writer) Err() error {
	return w.out.Err()
}

func (w *Writer) emitIndentation() {
	w.append(strings.Repeat(w.indentValue, w.level))
}

func (w *Writer) append(s string) {
	_ = w.out.WriteString(s)
}

// syncWrapPrefix keeps soft-wrap continuations aligned: two extra indent
// steps for ordinary statements, the comment marker for comment lines.
func (w *Writer) syncWrapPrefix() {
	prefix := strings.Repeat(w.indentValue, w.level)
	if w.comment {
		prefix += "// "
	} else {
		prefix += strings.Repeat(w.indentValue, 2*w.indentSize)
	}
	w.out.SetWrapPrefix(prefix)
}
