package tui

import (
	"strings"
	"testing"
)

func TestRenderItemTable(t *testing.T) {
	out := RenderItemTable([]string{"a", "b", "c"})

	for _, want := range []string{"#", "Title", "a", "b", "c", "1", "2", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	// Rows appear in the given (sorted) order.
	if strings.Index(out, "a") > strings.Index(out, "b") ||
		strings.Index(out, "b") > strings.Index(out, "c") {
		t.Errorf("rows out of order:\n%s", out)
	}
}

func TestRenderItemTable_Empty(t *testing.T) {
	out := RenderItemTable(nil)

	// Header-only table.
	if !strings.Contains(out, "Title") {
		t.Errorf("empty table should still render headers:\n%s", out)
	}
}

func TestRenderTable_Borders(t *testing.T) {
	out := RenderTable([]string{"#", "Title"}, [][]string{{"1", "cat"}})

	for _, wantRune := range []string{"┌", "┐", "└", "┘", "│", "─"} {
		if !strings.Contains(out, wantRune) {
			t.Errorf("table missing border rune %q:\n%s", wantRune, out)
		}
	}
}
