// Package cli implements the interactive mydiary client: a linear flow of
// screens (splash, login, register, home, create, detail) driven from a
// terminal prompt.
//
// One goroutine owns the flow and all screen state. Network calls run on
// their own goroutines and report back through a result channel consumed by
// the flow goroutine, so screen state is never written from anywhere else.
package cli
