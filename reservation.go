package protopoet

import (
	"fmt"
	"strings"

	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// FieldRange is an inclusive range of field numbers for use in number-form
// reservations.
type FieldRange struct {
	lo int32
	hi int32
}

// Range constructs a FieldRange. Bounds must be positive and the high bound
// strictly greater than the low bound.
func Range(lo int32, hi int32) FieldRange {
	checkArgument(lo > 0, "low number must be positive")
	checkArgument(hi > 0, "high number must be positive")
	checkArgument(hi > lo, "high value must be higher than low value")
	return FieldRange{lo: lo, hi: hi}
}

func (r FieldRange) String() string {
	return fmt.Sprintf("%d to %d", r.lo, r.hi)
}

func (r FieldRange) numbers() []int32 {
	out := make([]int32, 0, r.hi-r.lo+1)
	for n := r.lo; n <= r.hi; n++ {
		out = append(out, n)
	}
	return out
}

// ReservationSpec declares a block of field numbers, number ranges or field
// names that must never be used by a field in the same scope. A single
// reservation is either number-form or name-form, never both; ranges are only
// legal on the number form.
type ReservationSpec struct {
	comment      []string
	fieldNames   []string
	fieldNumbers []int32
	ranges       []FieldRange
}

// ReservationBuilder assembles a ReservationSpec.
type ReservationBuilder struct {
	spec ReservationSpec
}

// ReserveNumbers starts a number-form reservation. Duplicates collapse;
// numbers must be positive.
func ReserveNumbers(numbers ...int32) *ReservationBuilder {
	seen := make(map[int32]bool, len(numbers))
	distinct := make([]int32, 0, len(numbers))
	for _, n := range numbers {
		checkArgument(n > 0, "negative field numbers are invalid")
		if !seen[n] {
			seen[n] = true
			distinct = append(distinct, n)
		}
	}
	return &ReservationBuilder{spec: ReservationSpec{fieldNumbers: distinct}}
}

// ReserveNames starts a name-form reservation. Duplicates collapse.
func ReserveNames(names ...string) *ReservationBuilder {
	seen := make(map[string]bool, len(names))
	distinct := make([]string, 0, len(names))
	for _, n := range names {
		checkArgument(n != "", "field name may not be empty")
		if !seen[n] {
			seen[n] = true
			distinct = append(distinct, n)
		}
	}
	return &ReservationBuilder{spec: ReservationSpec{fieldNames: distinct}}
}

func (b *ReservationBuilder) SetComment(lines ...string) *ReservationBuilder {
	b.spec.comment = append([]string{}, lines...)
	return b
}

// AddRanges appends number ranges; only legal on a number-form reservation.
func (b *ReservationBuilder) AddRanges(ranges ...FieldRange) *ReservationBuilder {
	checkState(len(b.spec.fieldNames) == 0, "ranges are only allowed when reserving field numbers")
	b.spec.ranges = append(b.spec.ranges, ranges...)
	return b
}

func (b *ReservationBuilder) Build() *ReservationSpec {
	spec := b.spec
	return &spec
}

func (s *ReservationSpec) emit(w *writer.Writer) error {
	if len(s.comment) > 0 {
		if err := w.EmitComment(s.comment); err != nil {
			return err
		}
	}
	parts := make([]string, 0, len(s.fieldNames)+len(s.fieldNumbers)+len(s.ranges))
	for _, name := range s.fieldNames {
		parts = append(parts, fmt.Sprintf("%q", name))
	}
	for _, number := range s.fieldNumbers {
		parts = append(parts, fmt.Sprintf("%d", number))
	}
	for _, r := range s.ranges {
		parts = append(parts, r.String())
	}
	return w.Emitf("reserved %s;\n", strings.Join(parts, ", "))
}

// reservedNumbers flattens explicit numbers and ranges into a distinct list.
func (s *ReservationSpec) reservedNumbers() []int32 {
	seen := make(map[int32]bool)
	out := make([]int32, 0, len(s.fieldNumbers))
	for _, n := range s.fieldNumbers {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, r := range s.ranges {
		for _, n := range r.numbers() {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

func (s *ReservationSpec) reservedNames() []string {
	return s.fieldNames
}
