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
	SetEnabled(false) // disable colors for predictable output

	tbl := NewTable([]string{"Date", "Moon", "Tithi"})
	tbl.AddRow([]string{"Sun 18 Oct", "🌔", "Shukla Ashtami"})
	tbl.AddRow([]string{"Mon 19 Oct", "🌔", "Shukla Navami"})

	got := tbl.Render()

	// Check header is present.
	if !strings.Contains(got, "Date") || !strings.Contains(got, "Moon") || !strings.Contains(got, "Tithi") {
		t.Errorf("Render() missing headers in:\n%s", got)
	}

	// Check separator exists (Unicode dashes).
	if !strings.Contains(got, "─") {
		t.Error("Render() missing separator line")
	}

	// Check data rows.
	if !strings.Contains(got, "Sun 18 Oct") {
		t.Error("Render() missing first data row")
	}
	if !strings.Contains(got, "Mon 19 Oct") {
		t.Error("Render() missing second data row")
	}
	if !strings.Contains(got, "Shukla Ashtami") || !strings.Contains(got, "Shukla Navami") {
		t.Error("Render() missing tithi values")
	}
}

func TestTable_ColumnAlignment(t *testing.T) {
	SetEnabled(false)

	tbl := NewTable([]string{"A", "LongHeader"})
	tbl.AddRow([]string{"short", "x"})
	tbl.AddRow([]string{"y", "longer value"})

	got := tbl.Render()
	lines := strings.Split(strings.TrimSpace(got), "\n")

	// Should have 4 lines: header, separator, 2 data rows.
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d:\n%s", len(lines), got)
	}
}

func TestTable_EmojiColumnAligns(t *testing.T) {
	SetEnabled(false)

	tbl := NewTable([]string{"Moon", "Day"})
	tbl.AddRow([]string{"🌕", "a"})
	tbl.AddRow([]string{"()", "b"})

	lines := strings.Split(tbl.Render(), "\n")
	// Both data rows place the second column at the same byte-independent offset.
	first := strings.Index(lines[2], "a")
	second := strings.Index(lines[3], "b")
	// The emoji is 4 bytes but 2 cells; "()" is 2 bytes and 2 cells.
	if first-len("🌕") != second-len("()") {
		t.Errorf("emoji row misaligned:\n%s\n%s", lines[2], lines[3])
	}
}

func TestTable_HighlightRow(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	tbl := NewTable([]string{"Date", "Tithi"})
	tbl.AddRow([]string{"Sun", "Ashtami"})
	tbl.AddRow([]string{"Mon", "Navami"})
	tbl.SetHighlightRow(0)

	got := tbl.Render()

	// The highlighted row should contain ANSI codes.
	lines := strings.Split(got, "\n")
	// Line 0 is header, line 1 is separator, line 2 is first data row (highlighted).
	if len(lines) < 4 {
		t.Fatalf("expected at least 4 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "\033[") {
		t.Error("highlighted row should contain ANSI escape codes")
	}
	if strings.Contains(lines[3], "\033[") {
		t.Error("plain row should not contain ANSI escape codes")
	}
}

func TestTable_RowStyle(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	tbl := NewTable([]string{"Date"})
	tbl.AddRow([]string{"full"})
	tbl.AddRow([]string{"sel"})
	tbl.SetRowStyle(0, Yellow)
	tbl.SetRowStyle(1, Yellow)
	tbl.SetHighlightRow(1)

	lines := strings.Split(tbl.Render(), "\n")
	if !strings.HasPrefix(lines[2], "  "+yellow) {
		t.Errorf("styled row = %q, want yellow", lines[2])
	}
	if !strings.HasPrefix(lines[3], "  "+bold+cyan) {
		t.Errorf("highlight row = %q, want accent over row style", lines[3])
	}

	tbl.SetRowStyle(0, nil)
	lines = strings.Split(tbl.Render(), "\n")
	if strings.Contains(lines[2], "\033[") {
		t.Errorf("row style not cleared: %q", lines[2])
	}
}

func TestFormatRow(t *testing.T) {
	got := formatRow([]string{"abc", "de"}, []int{5, 4})
	want := "abc    de  "
	if got != want {
		t.Errorf("formatRow = %q, want %q", got, want)
	}
}

func TestFormatRow_MissingCells(t *testing.T) {
	// Fewer cells than widths should produce empty-padded columns.
	got := formatRow([]string{"a"}, []int{3, 5})
	// "a  " (3) + "  " (sep) + "     " (5) = "a         "
	want := "a         "
	if got != want {
		t.Errorf("formatRow = %q, want %q", got, want)
	}
}
