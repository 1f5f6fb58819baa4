package protopoet

import (
	"gopkg.microglot.org/protopoet.go/internal/writer"
)

// optionGroup renders a run of option statements contiguously so the group
// reads as a single body element.
type optionGroup []*OptionSpec

func (g optionGroup) emit(w *writer.Writer) error {
	for _, o := range g {
		if err := o.emit(w); err != nil {
			return err
		}
	}
	return nil
}

// reservationGroup renders a run of reserved statements contiguously.
type reservationGroup []*ReservationSpec

func (g reservationGroup) emit(w *writer.Writer) error {
	for _, r := range g {
		if err := r.emit(w); err != nil {
			return err
		}
	}
	return nil
}

// emitBody writes a braced scope body with one blank line before each
// element. An empty body collapses onto the header line.
func emitBody(w *writer.Writer, header string, elements []emitter) error {
	if len(elements) == 0 {
		return w.Emitf("%s {}\n", header)
	}
	if err := w.Emitf("%s {\n", header); err != nil {
		return err
	}
	w.Indent()
	for _, e := range elements {
		if err := w.Emit("\n"); err != nil {
			return err
		}
		if err := e.emit(w); err != nil {
			return err
		}
	}
	w.Unindent()
	return w.Emit("}\n")
}
