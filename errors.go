// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package protopoet

import "fmt"

// Stable codes identifying each class of usage conflict.
const (
	CodeFieldNameReserved   = "P0001"
	CodeFieldNameConflict   = "P0002"
	CodeFieldNumberReserved = "P0003"
	CodeFieldNumberConflict = "P0004"
	CodeTypeNameConflict    = "P0005"
)

// UsageError reports a name or number conflict discovered while rendering a
// scope: a duplicate field name or number, a reservation violation, or a
// duplicate type name. It aborts the render that produced it; use errors.As
// to recover it from the error returned by Render or Validate.
type UsageError struct {
	code    string
	message string
}

func (e *UsageError) Error() string {
	return e.message
}

func (e *UsageError) Code() string {
	return e.code
}

func (e *UsageError) Message() string {
	return e.message
}

func newUsageError(code string, format string, args ...any) *UsageError {
	return &UsageError{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}
