package display

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	tbl := NewTable([]string{"Name", "Value"})
	if tbl == nil {
		t.Fatal("NewTable returned nil")
	}
	if tbl.highlightRow != -1 {
		t.Errorf("highlightRow = %d, want -1", tbl.highlightRow)
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable([]string{})
	got := tbl.Render()
	if got != "" {
		t.Errorf("Render() with empty headers = %q, want empty", got)
	}
}

func TestTable_BasicRender(t *testing.T) {
	SetEnabled(false) // disable styling for predictable output

	tbl := NewTable([]string{"Tarih", "İmsak", "İftar"})
	tbl.AddRow([]string{"1 Mart Pzt", "05:06", "18:45"})
	tbl.AddRow([]string{"2 Mart Sal", "05:05", "18:46"})

	got := tbl.Render()

	for _, want := range []string{"Tarih", "İmsak", "İftar", "05:06", "18:46", "1 Mart Pzt"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q in:\n%s", want, got)
		}
	}

	// Header separator uses box-drawing dashes.
	if !strings.Contains(got, "─") {
		t.Errorf("Render() missing header separator in:\n%s", got)
	}
}

func TestTable_LinesIndented(t *testing.T) {
	SetEnabled(false)

	tbl := NewTable([]string{"A", "B"})
	tbl.AddRow([]string{"1", "2"})

	got := tbl.Render()
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %q not indented", line)
		}
	}
}

func TestTable_RowOrder(t *testing.T) {
	SetEnabled(false)

	tbl := NewTable([]string{"Day"})
	tbl.AddRow([]string{"first"})
	tbl.AddRow([]string{"second"})

	got := tbl.Render()
	if strings.Index(got, "first") > strings.Index(got, "second") {
		t.Errorf("rows out of order in:\n%s", got)
	}
}

func TestTable_HighlightRow_TextPreserved(t *testing.T) {
	SetEnabled(false)

	tbl := NewTable([]string{"Day", "Time"})
	tbl.AddRow([]string{"yesterday", "18:44"})
	tbl.AddRow([]string{"today", "18:45"})
	tbl.SetHighlightRow(1)

	got := tbl.Render()
	if !strings.Contains(got, "today") || !strings.Contains(got, "18:45") {
		t.Errorf("highlighted row content lost in:\n%s", got)
	}
}

func TestTable_ShortRow(t *testing.T) {
	SetEnabled(false)

	tbl := NewTable([]string{"A", "B", "C"})
	tbl.AddRow([]string{"only"})

	got := tbl.Render()
	if !strings.Contains(got, "only") {
		t.Errorf("short row content lost in:\n%s", got)
	}
}
