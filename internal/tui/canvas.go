package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/evenhub/internal/layout"
)

// One terminal cell stands for a 6x12 px block of the display.
const (
	cellWidth  = 6
	cellHeight = 12
	Cols       = DisplayWidth / cellWidth
	Rows       = DisplayHeight / cellHeight
)

type rect struct{ x, y, w, h int }

func cellRect(x, y, w, h int) rect {
	return rect{x: x / cellWidth, y: y / cellHeight, w: w / cellWidth, h: h / cellHeight}
}

// canvas is a fixed grid of display cells.
type canvas struct {
	cells [][]rune
	// highlight marks the selected list row.
	highlight *rect
}

func newCanvas() *canvas {
	cells := make([][]rune, Rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", Cols))
	}
	return &canvas{cells: cells}
}

func (c *canvas) set(x, y int, r rune) {
	if y < 0 || y >= Rows || x < 0 || x >= Cols {
		return
	}
	c.cells[y][x] = r
}

// write puts s at (x, y), clipped to w cells.
func (c *canvas) write(x, y, w int, s string) {
	i := 0
	for _, r := range s {
		if i >= w {
			return
		}
		c.set(x+i, y, r)
		i++
	}
}

func (c *canvas) clear(r rect) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			c.set(x, y, ' ')
		}
	}
}

func (c *canvas) box(r rect, rounded bool) {
	if r.w < 2 || r.h < 2 {
		return
	}
	tl, tr, bl, br := '┌', '┐', '└', '┘'
	if rounded {
		tl, tr, bl, br = '╭', '╮', '╰', '╯'
	}
	right, bottom := r.x+r.w-1, r.y+r.h-1
	for x := r.x + 1; x < right; x++ {
		c.set(x, r.y, '─')
		c.set(x, bottom, '─')
	}
	for y := r.y + 1; y < bottom; y++ {
		c.set(r.x, y, '│')
		c.set(right, y, '│')
	}
	c.set(r.x, r.y, tl)
	c.set(right, r.y, tr)
	c.set(r.x, bottom, bl)
	c.set(right, bottom, br)
}

func (c *canvas) lines() []string {
	out := make([]string, len(c.cells))
	for i, row := range c.cells {
		out[i] = string(row)
	}
	return out
}

// draw renders a snapshot. Lists are drawn first so footer text stays on top.
func draw(s Snapshot) *canvas {
	c := newCanvas()
	if s.Page == nil {
		c.write(0, Rows/2, Cols, centered("(no page)", Cols))
		return c
	}
	for _, l := range s.Page.ListObject {
		drawList(c, l, s.Selected)
	}
	for _, t := range s.Page.TextObject {
		drawText(c, t)
	}
	return c
}

func drawText(c *canvas, t layout.TextObject) {
	r := cellRect(t.XPosition, t.YPosition, t.Width, t.Height)
	c.clear(r)
	if t.BorderWidth > 0 {
		c.box(r, t.BorderRadius > 0)
		inset := 1 + t.PaddingLength/cellWidth
		r = rect{x: r.x + inset, y: r.y + 1, w: r.w - 2*inset, h: r.h - 2}
	}
	if r.w <= 0 || r.h <= 0 {
		return
	}
	wrapped := strings.Split(ansi.Wrap(t.Content, r.w, ""), "\n")
	for i, line := range wrapped {
		if i >= r.h {
			break
		}
		c.write(r.x, r.y+i, r.w, line)
	}
}

func drawList(c *canvas, l layout.ListObject, selected int) {
	r := cellRect(l.XPosition, l.YPosition, l.Width, l.Height)
	items := l.ItemContainer.ItemName
	if r.h <= 0 || len(items) == 0 {
		return
	}
	capture := l.IsEventCapture == 1
	selected = min(max(selected, 0), len(items)-1)
	start := 0
	if capture && selected >= r.h {
		start = selected - r.h + 1
	}
	for row := 0; row < r.h && start+row < len(items); row++ {
		idx := start + row
		prefix := "  "
		if capture && idx == selected {
			prefix = "> "
			c.highlight = &rect{x: r.x, y: r.y + row, w: r.w, h: 1}
		}
		c.write(r.x, r.y+row, r.w, prefix+ansi.Truncate(items[idx], r.w-len(prefix), "…"))
	}
}

func centered(s string, width int) string {
	pad := max(0, (width-len([]rune(s)))/2)
	return strings.Repeat(" ", pad) + s
}
