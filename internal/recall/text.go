// Package recall renders what the player knows about a monster race as
// colored text.
package recall

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Color is the display color of a text segment. The CLI maps it to a
// terminal color.
type Color int

const (
	White Color = iota
	Green
	Yellow
	Orange
	Red
	Blue
	LightBlue
	LightGreen
	Violet
)

var colorNames = [...]string{"white", "green", "yellow", "orange", "red", "blue", "light blue", "light green", "violet"}

func (c Color) String() string {
	if c < White || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ColorFromGlyph maps a race color letter ("G", "v", ...) to a Color.
func ColorFromGlyph(code string) Color {
	switch code {
	case "g":
		return Green
	case "G":
		return LightGreen
	case "y":
		return Yellow
	case "o":
		return Orange
	case "r", "R":
		return Red
	case "b":
		return Blue
	case "B":
		return LightBlue
	case "v":
		return Violet
	}
	return White
}

// Segment is a run of text in one color.
type Segment struct {
	Text  string
	Color Color
}

// Text is a colored block built section by section.
type Text struct {
	segs []Segment
}

// Add appends s in color c, merging it into the last segment when the
// colors match.
func (t *Text) Add(s string, c Color) {
	if s == "" {
		return
	}
	if n := len(t.segs); n > 0 && t.segs[n-1].Color == c {
		t.segs[n-1].Text += s
		return
	}
	t.segs = append(t.segs, Segment{Text: s, Color: c})
}

// Addf appends formatted white text.
func (t *Text) Addf(format string, args ...any) {
	t.Add(fmt.Sprintf(format, args...), White)
}

// Append adds every segment of o.
func (t *Text) Append(o *Text) {
	for _, s := range o.segs {
		t.Add(s.Text, s.Color)
	}
}

// Segments returns the segments in order.
func (t *Text) Segments() []Segment {
	return t.segs
}

// Plain returns the text without colors or trailing space.
func (t *Text) Plain() string {
	return t.Render(nil, 0)
}

// Wrap returns the plain text wrapped to width columns.
func (t *Text) Wrap(width int) string {
	return t.Render(nil, width)
}

// Render styles each segment with style, then word wraps the result to
// width columns. A nil style leaves segments as they are; width 0 disables
// wrapping. Wrapping is escape-sequence aware, so styled output wraps at the
// same points as plain output.
func (t *Text) Render(style func(c Color, s string) string, width int) string {
	var b strings.Builder
	for _, s := range t.segs {
		if style != nil {
			b.WriteString(style(s.Color, s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	out := strings.TrimRight(b.String(), " ")
	if width > 0 {
		out = wordwrap.String(out, width)
	}
	return out
}
