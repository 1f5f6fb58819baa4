// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package writer

import (
	"io"
	"unicode/utf8"
)

// LineWrapper is a column-aware sink that soft-wraps overlong runs of text at
// the most recent space on the line. Newlines written by the caller always
// pass through untouched; a wrap replaces a single space with a newline
// followed by the configured continuation prefix. Text between spaces is
// buffered, so Flush must be called once the stream is complete.
type LineWrapper struct {
	out          io.Writer
	limit        int
	wrapPrefix   string
	column       int
	pendingSpace bool
	word         []rune
	err          error
}

func NewLineWrapper(out io.Writer, limit int) *LineWrapper {
	return &LineWrapper{
		out:   out,
		limit: limit,
	}
}

// SetWrapPrefix configures the text emitted at the start of every
// soft-wrapped continuation line.
func (l *LineWrapper) SetWrapPrefix(prefix string) {
	l.wrapPrefix = prefix
}

func (l *LineWrapper) WriteString(s string) error {
	for _, r := range s {
		switch r {
		case '\n':
			// Wrap an overlong final word, but never a trailing space.
			l.commit(len(l.word) > 0)
			l.write("\n")
			l.column = 0
			l.pendingSpace = false
		case ' ':
			l.commit(true)
			l.pendingSpace = true
		default:
			l.word = append(l.word, r)
		}
	}
	return l.err
}

// Flush writes out any buffered text verbatim. A flush never triggers a wrap
// because the decision point for a wrap is the space that follows a word, and
// no further text is coming.
func (l *LineWrapper) Flush() error {
	l.commit(false)
	return l.err
}

func (l *LineWrapper) Err() error {
	return l.err
}

// commit writes the deferred space (wrapping instead when the pending word
// would push the line past the limit) followed by the buffered word. Wraps
// are suppressed inside the leading indentation of a line so that an indent
// run of spaces is never itself a break point.
func (l *LineWrapper) commit(allowWrap bool) {
	if l.pendingSpace {
		prefixWidth := utf8.RuneCountInString(l.wrapPrefix)
		if allowWrap && l.column+1+len(l.word) > l.limit && l.column+1 > prefixWidth {
			l.write("\n")
			l.write(l.wrapPrefix)
			l.column = prefixWidth
		} else {
			l.write(" ")
			l.column++
		}
		l.pendingSpace = false
	}
	if len(l.word) > 0 {
		l.write(string(l.word))
		l.column += len(l.word)
		l.word = l.word[:0]
	}
}

func (l *LineWrapper) write(s string) {
	if l.err != nil {
		return
	}
	_, l.err = io.WriteString(l.out, s)
}
