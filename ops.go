package flaggo

// The operator family for flag enumerations. Go has no operator overloading,
// so every operand combination of the original bitwise operators is spelled
// out as a function or method:
//
//	raw OP raw    -> Or, And, Xor, AndNot, Not (free functions)
//	set OP raw    -> Set.Or, Set.And, Set.Xor (raw on either side - the
//	                 operators are commutative)
//	set OP set    -> Set.Union, Set.Intersect, Set.SymDiff
//	raw OP= raw   -> OrAssign, AndAssign, XorAssign
//	set OP= raw   -> Set.Set, Set.Only, Set.Toggle, Set.Remove
//	set OP= set   -> Set.SetAll, Set.OnlyAll, Set.ToggleAll, Set.RemoveAll
//
// Everything is constrained by Flag, so an enumeration that never declared
// the marker method has none of these available, and mixing two different
// flag enumerations in one call never type-checks. Shifting is deliberately
// absent: a set of named bits has no meaningful shift semantics.

// Returns the union of two raw flag values.
func Or[E Flag](a, b E) E {
	return a | b
}

// Returns the intersection of two raw flag values.
func And[E Flag](a, b E) E {
	return a & b
}

// Returns the exclusive-or of two raw flag values.
func Xor[E Flag](a, b E) E {
	return a ^ b
}

// Returns a with the bits of b cleared.
func AndNot[E Flag](a, b E) E {
	return a &^ b
}

// Returns the complement of a raw flag value over the full width of the
// enumeration's underlying type.
func Not[E Flag](e E) E {
	return ^e
}

// Ors the given flags into the value pointed to and returns the new value.
func OrAssign[E Flag](value *E, flags E) E {
	*value |= flags
	return *value
}

// Ands the given flags into the value pointed to and returns the new value.
func AndAssign[E Flag](value *E, flags E) E {
	*value &= flags
	return *value
}

// Xors the given flags into the value pointed to and returns the new value.
func XorAssign[E Flag](value *E, flags E) E {
	*value ^= flags
	return *value
}

// Returns a new set also holding the given flags.
func (f Set[E]) Or(flags E) Set[E] {
	return Set[E]{value: f.value | flags}
}

// Returns a new set holding only the given flags that are already held.
func (f Set[E]) And(flags E) Set[E] {
	return Set[E]{value: f.value & flags}
}

// Returns a new set with the given flags flipped.
func (f Set[E]) Xor(flags E) Set[E] {
	return Set[E]{value: f.value ^ flags}
}

// Returns the union of two sets.
func (f Set[E]) Union(other Set[E]) Set[E] {
	return Set[E]{value: f.value | other.value}
}

// Returns the intersection of two sets.
func (f Set[E]) Intersect(other Set[E]) Set[E] {
	return Set[E]{value: f.value & other.value}
}

// Returns the symmetric difference of two sets, the flags held by exactly one
// of them.
func (f Set[E]) SymDiff(other Set[E]) Set[E] {
	return Set[E]{value: f.value ^ other.value}
}

// Sets the given flags and returns the receiver for chaining.
func (f *Set[E]) Set(flags E) *Set[E] {
	f.value |= flags
	return f
}

// Removes all flags but the given ones and returns the receiver for chaining.
func (f *Set[E]) Only(flags E) *Set[E] {
	f.value &= flags
	return f
}

// Toggles the given flags and returns the receiver for chaining.
func (f *Set[E]) Toggle(flags E) *Set[E] {
	f.value ^= flags
	return f
}

// Removes the given flags and returns the receiver for chaining.
func (f *Set[E]) Remove(flags E) *Set[E] {
	f.value &^= flags
	return f
}

// Removes all flags and returns the receiver for chaining.
func (f *Set[E]) Clear() *Set[E] {
	f.value = 0
	return f
}

// Sets all flags held by the other set and returns the receiver for chaining.
func (f *Set[E]) SetAll(other Set[E]) *Set[E] {
	f.value |= other.value
	return f
}

// Removes all flags not held by the other set and returns the receiver for
// chaining.
func (f *Set[E]) OnlyAll(other Set[E]) *Set[E] {
	f.value &= other.value
	return f
}

// Toggles all flags held by the other set and returns the receiver for
// chaining.
func (f *Set[E]) ToggleAll(other Set[E]) *Set[E] {
	f.value ^= other.value
	return f
}

// Removes all flags held by the other set and returns the receiver for
// chaining.
func (f *Set[E]) RemoveAll(other Set[E]) *Set[E] {
	f.value &^= other.value
	return f
}
