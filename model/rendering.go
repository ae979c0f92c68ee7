package model

import (
	"bufio"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "░░"

	clearScreenSeq = "\033[H\033[2J"
)

// Renderer draws a universe onto a writer
type Renderer interface {
	Display(w io.Writer, u *Universe) error
}

// TextRenderer writes the universe's own text rendering
type TextRenderer struct{}

// Display writes u.Render() to w
func (r *TextRenderer) Display(w io.Writer, u *Universe) error {
	if _, err := io.WriteString(w, u.Render()); err != nil {
		return errors.Wrap(err, "[TextRenderer.Display] failed to write frame")
	}
	return nil
}

// CanvasRenderer paints each cell as a two-column block straight from the
// cell view, optionally coloured.
type CanvasRenderer struct {
	alive string
	dead  string
}

func NewCanvasRenderer(color bool) *CanvasRenderer {
	au := aurora.NewAurora(color)
	return &CanvasRenderer{
		alive: au.Green(gridPosBlock).String(),
		dead:  au.BrightBlack(gridPosEmpty).String(),
	}
}

// Display paints the universe row by row
func (r *CanvasRenderer) Display(w io.Writer, u *Universe) error {
	var (
		bw    = bufio.NewWriter(w)
		view  = u.Cells()
		width = view.Width()
	)
	view.Each(func(_, col uint32, c Cell) {
		if c.IsAlive() {
			bw.WriteString(r.alive)
		} else {
			bw.WriteString(r.dead)
		}
		if col == width-1 {
			bw.WriteByte('\n')
		}
	})
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[CanvasRenderer.Display] failed to write frame")
	}
	return nil
}

// ClearScreen moves the cursor home and clears the terminal
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, clearScreenSeq)
	return errors.Wrap(err, "[ClearScreen] failed to clear terminal")
}
