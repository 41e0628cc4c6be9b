package main

import (
	"strings"

	"github.com/mbndr/figlet4go"

	"github.com/kormoran/tui"
)

// splashElement paints a FIGlet banner centered in its area. It
// composes tui.BaseElement like any other element; the only thing
// specific to it is what it draws in Render.
type splashElement struct {
	tui.BaseElement
	text  string
	style tui.Style
}

func newSplashElement(text string) splashElement {
	return splashElement{
		BaseElement: tui.NewBaseElement("splash"),
		text:        text,
		style:       tui.NewStyle().Foreground(tui.Named("cyan")).AddModifier(tui.ModifierBold),
	}
}

func (s splashElement) Render(area tui.Rect, buf *tui.Buffer, ctx *tui.RenderContext) {
	render := figlet4go.NewAsciiRender()
	rendered, err := render.Render(s.text)
	if err != nil {
		buf.SetText(area.X, area.Y, tui.NewLine("error rendering banner: "+err.Error()), area.Width)
		return
	}

	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	startY := area.Y + (area.Height-len(lines))/2
	if startY < area.Y {
		startY = area.Y
	}
	for i, line := range lines {
		y := startY + i
		if y >= area.Bottom() {
			break
		}
		styled := tui.Line{Spans: []tui.Span{{Content: line, Style: s.style}}}
		width := styled.Width()
		x := area.X + (area.Width-width)/2
		if x < area.X {
			x = area.X
		}
		buf.SetText(x, y, styled, area.Width-(x-area.X))
	}
}
