package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText writes s starting at (x, y), clipped to the screen
// Returns the column after the last drawn rune
func DrawText(ctx RenderContext, x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		ctx.SetCell(x, y, r, style)
		x += w
	}
	return x
}

// DrawLines writes newline-separated text downward from (x, y)
// Returns the number of rows used
func DrawLines(ctx RenderContext, x, y int, style tcell.Style, s string) int {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		DrawText(ctx, x, y+i, style, line)
	}
	return len(lines)
}

// TextWidth returns the display width of s in cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// DrawCentered writes s centered on row y
func DrawCentered(ctx RenderContext, y int, style tcell.Style, s string) {
	x := (ctx.ScreenWidth - TextWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	DrawText(ctx, x, y, style, s)
}
