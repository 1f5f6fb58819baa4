// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package protopoet builds proto3 source text from an in-memory model.
//
// Callers assemble an immutable tree of spec values through builders (one per
// syntactic construct: file, message, enum, service, extension, field
// variants, option, reservation, import) and render it to any io.Writer.
// Structural misuse of a builder (wrong option category, an illegal map key
// type, a malformed reservation range) panics at the offending call; name and
// number conflicts, which can only be seen once all siblings of a scope are
// known, surface as a *UsageError from Render or Validate.
//
// The package performs no parsing and never resolves type references; it is a
// one-directional model-to-text compiler.
package protopoet

import (
	"gopkg.microglot.org/protopoet.go/internal/optional"
	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// emitter is the minimal capability every model node has: write yourself.
type emitter interface {
	emit(w *writer.Writer) error
}

// usedField identifies a declared field for collision tracking. Field numbers
// are not always available (rpc methods have none) but must be provided
// whenever they exist so reuse is caught.
type usedField interface {
	fieldName() string
	fieldNumber() optional.Optional[int32]
}

// usedFieldGroup is a named block of fields whose members share the enclosing
// scope's namespace, e.g. a oneof propagating into its parent message.
type usedFieldGroup interface {
	fieldName() string
	memberFields() []usedField
}

// fieldReservations is a declared set of names and numbers that must never
// coincide with a field identity in the same scope.
type fieldReservations interface {
	reservedNumbers() []int32
	reservedNames() []string
}

// namedType is any construct whose name must be unique within its enclosing
// file or message.
type namedType interface {
	typeName() string
}

// importer is a construct that requires imports beyond those the caller
// declared, e.g. an extension block needing the descriptor proto.
type importer interface {
	imports() []ImportSpec
}
