// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package protopoet

// nameMonitor tracks the type names declared directly within one enclosing
// scope. A file and each message own independent instances; scopes do not
// nest, so a doubly-nested message competes only with its immediate siblings.
// Reset at the start of every render; not safe for concurrent use.
type nameMonitor struct {
	// scope names the enclosing message in conflict messages; empty for
	// the file scope.
	scope string
	names map[string]bool
}

func (m *nameMonitor) reset() {
	m.names = make(map[string]bool)
}

func (m *nameMonitor) add(name string) error {
	if m.names[name] {
		if m.scope != "" {
			return newUsageError(CodeTypeNameConflict,
				"'%s' name already used in '%s'", name, m.scope)
		}
		return newUsageError(CodeTypeNameConflict, "'%s' name already used", name)
	}
	m.names[name] = true
	return nil
}
