package flaggo

import (
	"strings"
	"testing"
)

// Local enumerations so these tests never touch the global registry.
type fileFlag uint8

const (
	fileCreate fileFlag = 1 << iota
	fileTrunc
	fileSync
)

func (fileFlag) FlagEnum() {}

func TestAddTo(t *testing.T) {
	good := Names[fileFlag]{
		{Name: "create", Bit: fileCreate},
		{Name: "trunc", Bit: fileTrunc},
		{Name: "sync", Bit: fileSync},
	}

	tests := []struct {
		name          string
		register      string
		names         Names[fileFlag]
		expectedError string
	}{
		{
			name:     "valid",
			register: "FileFlag",
			names:    good,
		},
		{
			name:          "empty name",
			register:      "--",
			names:         good,
			expectedError: "a name is required",
		},
		{
			name:          "unnamed flag",
			register:      "FileFlag",
			names:         Names[fileFlag]{{Name: " ", Bit: fileCreate}},
			expectedError: "has no name",
		},
		{
			name:     "duplicate flag name",
			register: "FileFlag",
			names: Names[fileFlag]{
				{Name: "create", Bit: fileCreate},
				{Name: "CREATE", Bit: fileTrunc},
			},
			expectedError: "is duplicated",
		},
		{
			name:          "zero bit",
			register:      "FileFlag",
			names:         Names[fileFlag]{{Name: "nothing", Bit: 0}},
			expectedError: "is not a single bit",
		},
		{
			name:          "multiple bits",
			register:      "FileFlag",
			names:         Names[fileFlag]{{Name: "both", Bit: fileCreate | fileTrunc}},
			expectedError: "is not a single bit",
		},
		{
			name:     "overlapping bits",
			register: "FileFlag",
			names: Names[fileFlag]{
				{Name: "create", Bit: fileCreate},
				{Name: "make", Bit: fileCreate},
			},
			expectedError: "overlaps another flag",
		},
	}

	for _, test := range tests {
		registry := NewRegistry()
		err := AddTo(&registry, test.register, test.names)
		if test.expectedError == "" {
			if err != nil {
				t.Errorf("%s: Expected no error but got %s", test.name, err)
			}
		} else if err == nil {
			t.Errorf("%s: Expected an error but got none", test.name)
		} else if !strings.Contains(err.Error(), test.expectedError) {
			t.Errorf("%s: Expected error containing %q but got %q", test.name, test.expectedError, err)
		}
	}
}

func TestAddToTwice(t *testing.T) {
	registry := NewRegistry()
	names := Names[fileFlag]{{Name: "create", Bit: fileCreate}}

	if err := AddTo(&registry, "FileFlag", names); err != nil {
		t.Errorf("Expected no error but got %s", err)
	}
	if err := AddTo(&registry, "Other", names); err == nil {
		t.Errorf("Expected an error registering the same type twice")
	}
}

func TestNamesIn(t *testing.T) {
	registry := NewRegistry()

	if _, ok := NamesIn[fileFlag](&registry); ok {
		t.Errorf("Expected no names before registration")
	}

	names := Names[fileFlag]{
		{Name: "create", Bit: fileCreate},
		{Name: "trunc", Bit: fileTrunc},
	}
	if err := AddTo(&registry, "FileFlag", names); err != nil {
		t.Errorf("Expected no error but got %s", err)
	}

	found, ok := NamesIn[fileFlag](&registry)
	if !ok || len(found) != 2 || found[0].Name != "create" {
		t.Errorf("Expected registered names but got %v", found)
	}
}

func TestEntryFor(t *testing.T) {
	registry := NewRegistry()
	if err := AddTo(&registry, "FileFlag", Names[fileFlag]{{Name: "create", Bit: fileCreate}}); err != nil {
		t.Errorf("Expected no error but got %s", err)
	}

	tests := []struct {
		lookup   string
		expected bool
	}{
		{
			lookup:   "FileFlag",
			expected: true,
		},
		{
			lookup:   "file",
			expected: true,
		},
		{
			lookup:   "FILE_FLAG",
			expected: true,
		},
		{
			lookup:   "sock",
			expected: false,
		},
		{
			lookup:   "",
			expected: false,
		},
	}

	for _, test := range tests {
		entry := registry.EntryFor(test.lookup)
		if (entry != nil) != test.expected {
			t.Errorf("%q: Expected found=%v but got %v", test.lookup, test.expected, entry != nil)
		}
	}
}
