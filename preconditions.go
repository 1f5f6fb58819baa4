package protopoet

import "fmt"

// checkArgument panics when a builder is handed an invalid value. Builder
// misuse is a programming error, not an input error, so it fails at the call
// site rather than being deferred to render time.
func checkArgument(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf(format, args...))
	}
}

// checkState panics when a builder method is called in an invalid sequence.
func checkState(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf(format, args...))
	}
}
