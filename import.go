// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package protopoet

import (
	"strings"

	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// ImportModifier selects between the plain, weak and public import forms.
type ImportModifier int

const (
	ImportNone ImportModifier = iota
	ImportWeak
	ImportPublic
)

// separator renders the keyword (padded) between "import" and the path.
func (m ImportModifier) separator() string {
	switch m {
	case ImportWeak:
		return " weak "
	case ImportPublic:
		return " public "
	default:
		return " "
	}
}

// ImportSpec is a single import statement. Imports are hoisted by the file
// node: deduplicated by path and sorted lexicographically regardless of
// declaration order.
type ImportSpec struct {
	modifier ImportModifier
	path     string
}

// NewImport declares an import of the given proto file path.
func NewImport(path string) ImportSpec {
	return NewModifiedImport(ImportNone, path)
}

// NewModifiedImport declares a weak or public import.
func NewModifiedImport(modifier ImportModifier, path string) ImportSpec {
	checkArgument(strings.HasSuffix(path, ".proto"), "path must be a file ending with .proto")
	return ImportSpec{modifier: modifier, path: path}
}

func (s ImportSpec) Path() string {
	return s.path
}

func (s ImportSpec) emit(w *writer.Writer) error {
	return w.Emitf("import%s%q;\n", s.modifier.separator(), s.path)
}
