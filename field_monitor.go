// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package protopoet

import (
	"gopkg.microglot.org/protopoet.go/internal/optional"
)

// fieldMonitor tracks the field identities used within one scope (a message,
// enum, service or extension body) and rejects reuse. Identities arrive in
// caller order as individual fields, grouped fields (oneofs) and reservation
// blocks. Number and name collisions are tracked in two separate keyspaces so
// that identities without a number, such as rpc methods and name-form
// reservations, only occupy the name keyspace.
//
// Monitors are owned by their scope's spec node and reset at the start of
// every render, so repeated renders of the same immutable model are
// independent. They are not safe for concurrent use.
type fieldMonitor struct {
	byName   map[string]fieldNameEntry
	byNumber map[int32]fieldNumberEntry
}

type fieldNameEntry struct {
	number   optional.Optional[int32]
	reserved bool
}

type fieldNumberEntry struct {
	name     string
	reserved bool
}

func (m *fieldMonitor) reset() {
	m.byName = make(map[string]fieldNameEntry)
	m.byNumber = make(map[int32]fieldNumberEntry)
}

// addField records a field identity, rejecting it when its name or number was
// already taken by an earlier field or reservation.
func (m *fieldMonitor) addField(f usedField) error {
	return m.record(f.fieldName(), f.fieldNumber(), false)
}

// addGroup records the group's own name as a numberless field identity (a
// oneof name competes with sibling field names) and then every member field
// individually.
func (m *fieldMonitor) addGroup(g usedFieldGroup) error {
	if err := m.record(g.fieldName(), optional.None[int32](), false); err != nil {
		return err
	}
	for _, member := range g.memberFields() {
		if err := m.addField(member); err != nil {
			return err
		}
	}
	return nil
}

// addReservation expands a reservation into its constituent numbers and names
// and records each as used, flagged reserved so later conflicts report the
// more specific message.
func (m *fieldMonitor) addReservation(r fieldReservations) error {
	for _, number := range r.reservedNumbers() {
		if err := m.record("", optional.Some(number), true); err != nil {
			return err
		}
	}
	for _, name := range r.reservedNames() {
		if err := m.record(name, optional.None[int32](), true); err != nil {
			return err
		}
	}
	return nil
}

func (m *fieldMonitor) record(name string, number optional.Optional[int32], reserved bool) error {
	if err := m.ensureUnused(name, number); err != nil {
		return err
	}
	if name != "" {
		m.byName[name] = fieldNameEntry{number: number, reserved: reserved}
	}
	if number.IsPresent() {
		m.byNumber[number.Value()] = fieldNumberEntry{name: name, reserved: reserved}
	}
	return nil
}

func (m *fieldMonitor) ensureUnused(name string, number optional.Optional[int32]) error {
	if prior, ok := m.byName[name]; ok && name != "" {
		switch {
		case prior.reserved:
			return newUsageError(CodeFieldNameReserved,
				"field name '%s' is reserved and cannot be used", name)
		case !prior.number.IsPresent():
			return newUsageError(CodeFieldNameConflict,
				"field name '%s' is not unique", name)
		case number.IsPresent():
			return newUsageError(CodeFieldNameConflict,
				"field name '%s' (number=%d) not unique, used by field number %d",
				name, number.Value(), prior.number.Value())
		default:
			return newUsageError(CodeFieldNameConflict,
				"field name '%s' not unique, used by field number %d",
				name, prior.number.Value())
		}
	}
	if !number.IsPresent() {
		return nil
	}
	if prior, ok := m.byNumber[number.Value()]; ok {
		if prior.reserved {
			return newUsageError(CodeFieldNumberReserved,
				"field number %d is reserved and cannot be used", number.Value())
		}
		return newUsageError(CodeFieldNumberConflict,
			"field number %d already used by field named '%s'", number.Value(), prior.name)
	}
	return nil
}
