package model

import (
	"bytes"
	"testing"
)

func TestConsoleCanvasRender(t *testing.T) {
	var out bytes.Buffer
	canvas := NewConsoleCanvas(2, 2)
	canvas.out = &out

	canvas.Draw(0, 1, ColourOn)
	canvas.Render()

	want := gridPosEmpty + gridPosBlock + "\n" + gridPosEmpty + gridPosEmpty + "\n"
	if out.String() != want {
		t.Errorf("Render output = %q, want %q", out.String(), want)
	}

	out.Reset()
	canvas.Draw(0, 1, ColourOff)
	canvas.Render()

	want = gridPosEmpty + gridPosEmpty + "\n" + gridPosEmpty + gridPosEmpty + "\n"
	if out.String() != want {
		t.Errorf("Render after clearing pixel = %q, want %q", out.String(), want)
	}
}
