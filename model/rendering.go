package model

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosWall  = '#'
	gridPosFloor = '.'
)

// TextRenderer draws a grid one character per cell, one line per row
type TextRenderer struct {
	Wall  rune
	Floor rune
}

// NewTextRenderer returns a renderer using '#' for walls and '.' for floors
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{Wall: gridPosWall, Floor: gridPosFloor}
}

// Render writes g to w, rows top to bottom
func (r *TextRenderer) Render(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for y := range g.height {
		for x := range g.width {
			ch := r.Floor
			if g.cells[y][x] {
				ch = r.Wall
			}
			if _, err := bw.WriteRune(ch); err != nil {
				return errors.Wrap(err, "[Render] failed to write cell")
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "[Render] failed to write row")
		}
	}
	return errors.Wrap(bw.Flush(), "[Render] failed to flush")
}

// String renders the grid with the default characters
func (g *Grid) String() string {
	var sb strings.Builder
	_ = NewTextRenderer().Render(&sb, g)
	return sb.String()
}
