package flaggo

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"
)

// Sets marshal as a list of flag names through the name table in the global
// registry, so a YAML or JSON document stays readable and stable across
// reordering of the enumeration's constants. Marshaling a set whose
// enumeration is not registered, or that holds bits with no registered name,
// is an error. Unmarshaling accepts a list of names or a single flag list
// string like "read|write".

// Returns the names of the held flags in table order.
func (f Set[E]) nameList() ([]string, error) {
	names, ok := Lookup[E]()
	if !ok {
		return nil, ErrNotRegistered
	}

	list := make([]string, 0, len(names))
	remainder := f.value
	for _, named := range names {
		if f.value&named.Bit != 0 {
			list = append(list, named.Name)
			remainder &^= named.Bit
		}
	}
	if remainder != 0 {
		return nil, fmt.Errorf("bits %#x have no registered name", uint64(remainder))
	}

	return list, nil
}

// Sets the value from a list of flag names.
func (f *Set[E]) setNameList(list []string) error {
	names, ok := Lookup[E]()
	if !ok {
		return ErrNotRegistered
	}

	var set Set[E]
	for _, item := range list {
		parsed, err := ParseNames(item, names)
		if err != nil {
			return err
		}
		set.value |= parsed.value
	}
	f.value = set.value

	return nil
}

func (f Set[E]) MarshalJSON() ([]byte, error) {
	list, err := f.nameList()
	if err != nil {
		return nil, err
	}
	return json.Marshal(list)
}

func (f *Set[E]) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		list = []string{single}
	}
	return f.setNameList(list)
}

func (f Set[E]) MarshalYAML() (interface{}, error) {
	return f.nameList()
}

func (f *Set[E]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var list []string
	if err := unmarshal(&list); err != nil {
		var single string
		if err := unmarshal(&single); err != nil {
			return err
		}
		list = []string{single}
	}
	return f.setNameList(list)
}

// Encodes the set as a YAML document of flag names.
func ToYAML[E Flag](set Set[E]) ([]byte, error) {
	return yaml.Marshal(set)
}

// Decodes a YAML document of flag names into a set.
func FromYAML[E Flag](data []byte) (Set[E], error) {
	var set Set[E]
	err := yaml.Unmarshal(data, &set)
	return set, err
}
