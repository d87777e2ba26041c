package flaggo

var GlobalRegistry = NewRegistry()

// Registers the name table of the enumeration E in the global registry.
func Register[E Flag](name string, names Names[E]) error {
	return AddTo(&GlobalRegistry, name, names)
}

// Registers the name table of the enumeration E in the global registry and
// panics on failure. Meant for top-level variable or init registration.
func MustRegister[E Flag](name string, names Names[E]) {
	if err := Register(name, names); err != nil {
		panic(err)
	}
}

// Returns the name table registered for the enumeration E in the global
// registry, if any.
func Lookup[E Flag]() (Names[E], bool) {
	return NamesIn[E](&GlobalRegistry)
}
