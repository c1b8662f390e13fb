package cmd

import (
	"strings"
	"testing"
)

// TestCommands guards the command surface: every command documents
// itself and names are unique, so help output and completion stay sane.
func TestCommands(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Commands {
		name := c.Name()
		if name == "" {
			t.Errorf("%T has no name", c)
		}
		if seen[name] {
			t.Errorf("command name %q registered twice", name)
		}
		seen[name] = true

		if c.Synopsis() == "" {
			t.Errorf("command %q has no synopsis", name)
		}
		if !strings.Contains(c.Usage(), name) {
			t.Errorf("usage of %q does not mention the command", name)
		}
	}
}
