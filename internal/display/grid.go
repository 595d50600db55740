package display

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Style flags for month grid cells. Flags combine; FullMoon, NewMoon,
// Ekadashi and Today pick the color in that order of precedence.
type Style uint8

const (
	StyleFullMoon Style = 1 << iota
	StyleNewMoon
	StyleEkadashi
	StyleToday
	StyleSelected
)

// Apply renders text with the colors that s selects.
func Apply(s Style, text string) string {
	switch {
	case s&StyleFullMoon != 0:
		text = Yellow(text)
	case s&StyleNewMoon != 0:
		text = Gray(text)
	case s&StyleEkadashi != 0:
		text = Magenta(text)
	case s&StyleToday != 0:
		text = Cyan(text)
	}
	if s&StyleToday != 0 {
		text = Bold(text)
	}
	if s&StyleSelected != 0 {
		text = Reverse(text)
	}
	return text
}

// Cell is one day of the month grid. Each line is centered in the cell.
type Cell struct {
	Lines []string
	Style Style
}

// Grid renders a calendar month as rows of seven cells under a weekday
// header. Blank cells pad the first week.
type Grid struct {
	labels    []string
	cellWidth int
	cells     []*Cell
}

const (
	gridColumns      = 7
	defaultCellWidth = 6
)

// NewGrid creates a grid with the given weekday labels. A cellWidth <= 0
// uses the default width.
func NewGrid(labels []string, cellWidth int) *Grid {
	if cellWidth <= 0 {
		cellWidth = defaultCellWidth
	}
	return &Grid{labels: labels, cellWidth: cellWidth}
}

// AddBlank appends an empty cell.
func (g *Grid) AddBlank() {
	g.cells = append(g.cells, nil)
}

// AddCell appends a day cell.
func (g *Grid) AddCell(c Cell) {
	g.cells = append(g.cells, &c)
}

// Render produces the grid string with leading indent.
func (g *Grid) Render() string {
	var sb strings.Builder

	header := make([]string, gridColumns)
	for i := range header {
		label := ""
		if i < len(g.labels) {
			label = g.labels[i]
		}
		header[i] = center(label, g.cellWidth)
	}
	sb.WriteString("  " + Bold(strings.TrimRight(strings.Join(header, " "), " ")) + "\n")

	for start := 0; start < len(g.cells); start += gridColumns {
		end := start + gridColumns
		if end > len(g.cells) {
			end = len(g.cells)
		}
		week := g.cells[start:end]

		height := 0
		for _, c := range week {
			if c != nil && len(c.Lines) > height {
				height = len(c.Lines)
			}
		}

		for line := 0; line < height; line++ {
			parts := make([]string, gridColumns)
			for col := range parts {
				text := ""
				var style Style
				if col < len(week) && week[col] != nil {
					c := week[col]
					if line < len(c.Lines) {
						text = c.Lines[line]
					}
					style = c.Style
				}
				parts[col] = Apply(style, center(text, g.cellWidth))
			}
			sb.WriteString("  " + strings.TrimRight(strings.Join(parts, " "), " ") + "\n")
		}
	}

	return sb.String()
}

// center pads s on both sides to w terminal cells, truncating when wider.
func center(s string, w int) string {
	s = runewidth.Truncate(s, w, "")
	gap := w - runewidth.StringWidth(s)
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
