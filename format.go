package flaggo

import (
	"fmt"
	"strings"
)

// Formats the set using the given name table: the names of held flags joined
// with "|" in table order, any unnamed remainder bits as one hex literal, and
// "0" for the empty set.
func (f Set[E]) Format(names Names[E]) string {
	if f.value == 0 {
		return "0"
	}

	parts := make([]string, 0, len(names))
	remainder := f.value
	for _, named := range names {
		if f.value&named.Bit != 0 {
			parts = append(parts, named.Name)
			remainder &^= named.Bit
		}
	}
	if remainder != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint64(remainder)))
	}

	return strings.Join(parts, "|")
}

// Formats the set using the name table in the global registry, falling back
// to a hex literal when the enumeration is not registered.
func (f Set[E]) String() string {
	if names, ok := Lookup[E](); ok {
		return f.Format(names)
	}
	return fmt.Sprintf("%#x", uint64(f.value))
}

// Formats a raw flag value using the name table in the global registry.
func String[E Flag](value E) string {
	return New(value).String()
}

// Parses a flag list like "READ|WRITE" or "read, write" into a set using the
// given name table. Name matching ignores case and punctuation. An empty
// string and "0" parse to the empty set; an unknown name is an ErrUnknownFlag
// error.
func ParseNames[E Flag](x string, names Names[E]) (Set[E], error) {
	var set Set[E]
	for _, token := range splitNames(x) {
		normal := Normalize(token)
		if normal == "" || normal == "0" {
			continue
		}
		found := false
		for _, named := range names {
			if Normalize(named.Name) == normal {
				set.value |= named.Bit
				found = true
				break
			}
		}
		if !found {
			return Set[E]{}, fmt.Errorf("%w: %s", ErrUnknownFlag, token)
		}
	}
	return set, nil
}

// Parses a flag list into a set using the name table in the global registry.
func Parse[E Flag](x string) (Set[E], error) {
	names, ok := Lookup[E]()
	if !ok {
		return Set[E]{}, ErrNotRegistered
	}
	return ParseNames(x, names)
}
