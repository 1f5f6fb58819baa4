package optional

import "fmt"

// Optional tracks a value together with whether it was ever set. The zero
// value is absent.
type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

func (self Optional[T]) Value() T {
	return self.value
}

// OrElse returns the contained value when present and the given fallback
// otherwise.
func (self Optional[T]) OrElse(fallback T) T {
	if self.present {
		return self.value
	}
	return fallback
}

func (self Optional[T]) String() string {
	if !self.present {
		return "<none>"
	}
	return fmt.Sprintf("%v", self.value)
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}
