package flaggo

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// An error returned when formatting, parsing, or marshaling needs the name
// table of an enumeration that was never registered.
var ErrNotRegistered = errors.New("flag enumeration is not registered")

// An error returned when parsing or unmarshaling meets a name that is not in
// the enumeration's name table.
var ErrUnknownFlag = errors.New("unknown flag name")

// A named flag constant of the enumeration E.
type Named[E Flag] struct {
	// The user friendly name of the flag.
	Name string
	// The flag value. Must be a single bit, distinct from every other
	// registered bit of the enumeration.
	Bit E
	// An optional description shown by Describe.
	Help string
}

// The ordered name table of an enumeration. The order is preserved by Format
// and Describe.
type Names[E Flag] []Named[E]

// A map of registered flag enumeration name tables, by type and by name.
// Registration only feeds the display surface - formatting, parsing,
// marshaling and describing. The operator family is gated at compile time by
// the Flag constraint and never consults a registry.
type Registry struct {
	entries []*RegistryEntry
	typeMap map[reflect.Type]*RegistryEntry
	nameMap map[string]*RegistryEntry
}

// Creates a new empty registry.
func NewRegistry() Registry {
	return Registry{
		entries: make([]*RegistryEntry, 0),
		typeMap: make(map[reflect.Type]*RegistryEntry),
		nameMap: make(map[string]*RegistryEntry),
	}
}

// An entry for a registered flag enumeration.
type RegistryEntry struct {
	// The user friendly name of the enumeration.
	Name string
	// The enumeration type.
	Type reflect.Type
	// The name table, a Names[E] of the entry's type.
	names any
}

// Returns whether the registry is empty.
func (r Registry) IsEmpty() bool {
	return len(r.entries) == 0
}

// Returns all enumerations registered to this registry.
func (r Registry) Entries() []*RegistryEntry {
	return r.entries
}

// Returns the entry registered for the given enumeration type, or nil.
func (r Registry) EntryForType(enumType reflect.Type) *RegistryEntry {
	return r.typeMap[enumType]
}

// Returns all entries whose name starts with the partial name.
func (r Registry) Matches(namePartial string) []*RegistryEntry {
	name := Normalize(namePartial)

	if entry, ok := r.nameMap[name]; ok {
		return []*RegistryEntry{entry}
	}

	if name == "" {
		return []*RegistryEntry{}
	}

	matches := make([]*RegistryEntry, 0)
	for key, entry := range r.nameMap {
		if strings.HasPrefix(key, name) {
			matches = append(matches, entry)
		}
	}

	return matches
}

// Returns the entry which matches the name only if one entry does.
func (r Registry) EntryFor(namePartial string) *RegistryEntry {
	matches := r.Matches(namePartial)
	if len(matches) == 1 {
		return matches[0]
	}
	return nil
}

// Registers the name table of the enumeration E under the given name.
// Registration fails if the enumeration or name is already registered, if a
// flag name is empty or duplicated, or if a bit is zero, spans more than one
// bit, or overlaps a previously registered bit. The bit checks enforce the
// design assumption the operator family itself never pays for: that flag
// constants are distinct powers of two.
func AddTo[E Flag](r *Registry, name string, names Names[E]) error {
	enumType := reflect.TypeOf((*E)(nil)).Elem()

	normal := Normalize(name)
	if normal == "" {
		return fmt.Errorf("registering %s: a name is required", enumType)
	}
	if _, exists := r.typeMap[enumType]; exists {
		return fmt.Errorf("registering %s: type is already registered", enumType)
	}
	if _, exists := r.nameMap[normal]; exists {
		return fmt.Errorf("registering %s: name %q is already registered", enumType, name)
	}

	var seen E
	seenNames := make(map[string]bool)
	for _, named := range names {
		flagNormal := Normalize(named.Name)
		if flagNormal == "" {
			return fmt.Errorf("registering %s: flag %#x has no name", enumType, uint64(named.Bit))
		}
		if seenNames[flagNormal] {
			return fmt.Errorf("registering %s: flag name %q is duplicated", enumType, named.Name)
		}
		if !singleBit(named.Bit) {
			return fmt.Errorf("registering %s: flag %q (%#x) is not a single bit", enumType, named.Name, uint64(named.Bit))
		}
		if seen&named.Bit != 0 {
			return fmt.Errorf("registering %s: flag %q (%#x) overlaps another flag", enumType, named.Name, uint64(named.Bit))
		}
		seen |= named.Bit
		seenNames[flagNormal] = true
	}

	if r.typeMap == nil {
		r.typeMap = make(map[reflect.Type]*RegistryEntry)
	}
	if r.nameMap == nil {
		r.nameMap = make(map[string]*RegistryEntry)
	}

	entry := &RegistryEntry{
		Name:  name,
		Type:  enumType,
		names: names,
	}
	r.entries = append(r.entries, entry)
	r.typeMap[enumType] = entry
	r.nameMap[normal] = entry

	return nil
}

// Returns the name table registered for the enumeration E, if any.
func NamesIn[E Flag](r *Registry) (Names[E], bool) {
	entry := r.EntryForType(reflect.TypeOf((*E)(nil)).Elem())
	if entry == nil {
		return nil, false
	}
	names, ok := entry.names.(Names[E])
	return names, ok
}
