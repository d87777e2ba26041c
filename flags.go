// Package flaggo provides a compile-time type-safe wrapper around flag
// enumerations - enumerations whose values are independent bits meant to be
// combined with bitwise OR/AND/XOR rather than used as mutually exclusive
// alternatives.
//
// A plain named integer type offers no protection against mixing flags from
// unrelated enumerations or against treating an arbitrary integer as a set of
// flags. The Set wrapper closes both holes: every operation is parameterized
// by a single enumeration type, and the only ways to construct a Set are the
// zero value (the empty set) and values of the enumeration itself.
package flaggo

import "golang.org/x/exp/constraints"

// The constraint satisfied by enumerations that have been marked as flag
// enumerations. An enumeration opts in by declaring the no-op marker method
// at the top level of its package:
//
//	type FileFlag uint8
//
//	const (
//		FileRead FileFlag = 1 << iota
//		FileWrite
//		FileAppend
//	)
//
//	func (FileFlag) FlagEnum() {}
//
// Optionally an alias gives the wrapped set a name of its own:
//
//	type FileFlags = flaggo.Set[FileFlag]
//
// Only marked types can be wrapped in a Set or passed to the operator
// functions in this package; using any other type fails to compile. Two
// different marked enumerations can never be mixed in one expression, since
// every operation takes a single enumeration type.
type Flag interface {
	constraints.Integer

	// The marker method. It is never called.
	FlagEnum()
}

// A set of flags from the enumeration E, stored as a single value of E's
// underlying integer type. The zero value is the empty set. The stored value
// need not correspond to a single named constant of E - it may be any bitwise
// combination, including zero. Sets are plain values: copying one copies its
// scalar and two sets of the same enumeration can be compared with ==.
type Set[E Flag] struct {
	value E
}

// Creates a set holding the union of the given flags. With no arguments the
// result is the empty set.
func New[E Flag](flags ...E) Set[E] {
	var set Set[E]
	for _, flag := range flags {
		set.value |= flag
	}
	return set
}

// Returns the held value typed as the raw enumeration. Since a Go enumeration
// is a named integer type this is also the conversion to the underlying
// integer representation, e.g. uint8(set.Get()).
func (f Set[E]) Get() E {
	return f.value
}

// Returns whether no flags are set.
func (f Set[E]) IsEmpty() bool {
	return f.value == 0
}

// Returns whether all of the given flags are set.
func (f Set[E]) Has(flags E) bool {
	return f.value&flags == flags
}

// Returns whether any of the given flags are set.
func (f Set[E]) HasAny(flags E) bool {
	return f.value&flags != 0
}

// Returns whether the set matches the given match.
func (f Set[E]) Is(match Match[E]) bool {
	return match(f.value)
}

// Returns the number of set bits.
func (f Set[E]) Count() int {
	count := 0
	for value := f.value; value != 0; value &= value - 1 {
		count++
	}
	return count
}

// Returns the complement of the set, computed over the full width of the
// enumeration's underlying type. The result can hold bits with no named
// constant in E.
func (f Set[E]) Not() Set[E] {
	return Set[E]{value: ^f.value}
}
