package flaggo

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		set      Set[Perm]
		expected string
	}{
		{
			name:     "empty",
			set:      New[Perm](),
			expected: "0",
		},
		{
			name:     "single",
			set:      New(Write),
			expected: "write",
		},
		{
			name:     "union in table order",
			set:      New(Exec, Read),
			expected: "read|exec",
		},
		{
			name:     "unnamed remainder",
			set:      New(Read).Or(Perm(0x40)),
			expected: "read|0x40",
		},
	}

	for _, test := range tests {
		actual := test.set.Format(permNames)
		if actual != test.expected {
			t.Errorf("%s: Expected %q but got %q", test.name, test.expected, actual)
		}
	}
}

func TestString(t *testing.T) {
	if actual := New(Read, Write).String(); actual != "read|write" {
		t.Errorf("Expected %q but got %q", "read|write", actual)
	}
	if actual := String(Read | Exec); actual != "read|exec" {
		t.Errorf("Expected %q but got %q", "read|exec", actual)
	}
	// sockOpt is never registered globally, so String falls back to hex.
	if actual := New(keepAlive).String(); actual != "0x1" {
		t.Errorf("Expected %q but got %q", "0x1", actual)
	}
}

func TestParseNames(t *testing.T) {
	tests := []struct {
		input         string
		expected      Set[Perm]
		expectedError error
	}{
		{
			input:    "",
			expected: New[Perm](),
		},
		{
			input:    "0",
			expected: New[Perm](),
		},
		{
			input:    "read",
			expected: New(Read),
		},
		{
			input:    "READ|Write",
			expected: New(Read, Write),
		},
		{
			input:    "read, exec",
			expected: New(Read, Exec),
		},
		{
			input:    "read + read",
			expected: New(Read),
		},
		{
			input:         "read|banana",
			expectedError: ErrUnknownFlag,
		},
	}

	for _, test := range tests {
		actual, err := ParseNames(test.input, permNames)
		if test.expectedError != nil {
			if !errors.Is(err, test.expectedError) {
				t.Errorf("%q: Expected error %v but got %v", test.input, test.expectedError, err)
			}
		} else if err != nil {
			t.Errorf("%q: Expected no error but got %s", test.input, err)
		} else if actual != test.expected {
			t.Errorf("%q: Expected %d but got %d", test.input, test.expected.Get(), actual.Get())
		}
	}
}

func TestParse(t *testing.T) {
	actual, err := Parse[Perm]("write|exec")
	if err != nil {
		t.Errorf("Expected no error but got %s", err)
	}
	if actual != New(Write, Exec) {
		t.Errorf("Expected %d but got %d", New(Write, Exec).Get(), actual.Get())
	}

	if _, err := Parse[sockOpt]("keepalive"); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Expected %v but got %v", ErrNotRegistered, err)
	}
}
