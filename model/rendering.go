package model

import (
	"bufio"
	"io"
	"os"
)

// Colour is a pixel colour understood by a Canvas. Exactly two values
// exist: ColourOn for live cells and ColourOff for dead ones.
type Colour uint8

const (
	ColourOff Colour = 0
	ColourOn  Colour = 1

	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// Canvas receives per-cell colour changes from the world. Draw is
// called once per state change, never batched across generations;
// Render displays whatever has accumulated. Implementations must not
// call back into the world from Draw.
type Canvas interface {
	Draw(i, j int, colour Colour)
	Render()
}

// ConsoleCanvas buffers a width x height pixel grid and renders it to a
// writer as text
type ConsoleCanvas struct {
	width  int
	height int
	pixels []Colour
	out    io.Writer
}

// NewConsoleCanvas creates an all-off canvas rendering to stdout
func NewConsoleCanvas(width, height int) *ConsoleCanvas {
	return &ConsoleCanvas{
		width:  width,
		height: height,
		pixels: make([]Colour, width*height),
		out:    os.Stdout,
	}
}

// Draw stores the colour for the pixel at (i, j)
func (c *ConsoleCanvas) Draw(i, j int, colour Colour) {
	c.pixels[i*c.width+j] = colour
}

// Render writes the pixel grid to the canvas output, one row per line
func (c *ConsoleCanvas) Render() {
	buf := bufio.NewWriter(c.out)
	for i := 0; i < c.height; i++ {
		for j := 0; j < c.width; j++ {
			if c.pixels[i*c.width+j] == ColourOn {
				buf.WriteString(gridPosBlock)
			} else {
				buf.WriteString(gridPosEmpty)
			}
		}
		buf.WriteByte('\n')
	}
	buf.Flush()
}
