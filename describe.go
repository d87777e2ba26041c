package flaggo

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"

	"golang.org/x/term"
)

// Returns the width Describe wraps its output to: the terminal width when
// stdout is a terminal, 80 columns otherwise.
func displayWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 20 {
			return width
		}
	}
	return 80
}

// Returns a human readable table of the name table registered for the
// enumeration E in the global registry: one line per named flag with its
// mask and help text.
func Describe[E Flag]() (string, error) {
	entry := GlobalRegistry.EntryForType(reflect.TypeOf((*E)(nil)).Elem())
	if entry == nil {
		return "", ErrNotRegistered
	}
	names, _ := entry.names.(Names[E])
	return DescribeNames(entry.Name, names), nil
}

// Returns a human readable table of the given name table.
func DescribeNames[E Flag](name string, names Names[E]) string {
	return describeNames(name, names, displayWidth())
}

func describeNames[E Flag](name string, names Names[E], width int) string {
	nameWidth := 0
	for _, named := range names {
		if len(named.Name) > nameWidth {
			nameWidth = len(named.Name)
		}
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "%s (%d flags)\n", name, len(names))
	for _, named := range names {
		lead := fmt.Sprintf("  %-*s  %#-6x", nameWidth, named.Name, uint64(named.Bit))
		if named.Help == "" {
			out.WriteString(strings.TrimRight(lead, " ") + "\n")
			continue
		}
		indent := strings.Repeat(" ", len(lead)+2)
		for i, line := range wrapText(named.Help, width-len(indent)) {
			if i == 0 {
				fmt.Fprintf(&out, "%s  %s\n", lead, line)
			} else {
				fmt.Fprintf(&out, "%s%s\n", indent, line)
			}
		}
	}

	return out.String()
}

// Greedily wraps the text into lines no longer than the given width, never
// breaking inside a word.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	lines := make([]string, 0)
	current := ""
	for _, word := range strings.Fields(text) {
		if current == "" {
			current = word
		} else if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return lines
}
