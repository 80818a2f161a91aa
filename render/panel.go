package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Rect is a screen area in cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the area holds no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Line is one line of panel text. ColorDefault inherits from the panel.
type Line struct {
	Text string
	Fg   tcell.Color
	Bg   tcell.Color
	Bold bool
}

// Panel is a filled, optionally bordered rectangle with centered text
type Panel struct {
	Area       Rect
	Background tcell.Color
	Border     bool
	Lines      []Line
}

// Frame receives panels for one draw pass
type Frame interface {
	Size() (width, height int)
	RenderPanel(p Panel)
}

// Screen is the cell-level surface a ScreenFrame writes to; tcell.Screen satisfies it
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// ScreenFrame adapts a Screen to Frame
type ScreenFrame struct {
	screen Screen
}

func NewScreenFrame(screen Screen) *ScreenFrame {
	return &ScreenFrame{screen: screen}
}

func (f *ScreenFrame) Size() (int, int) {
	return f.screen.Size()
}

func (f *ScreenFrame) RenderPanel(p Panel) {
	DrawPanel(f.screen, p)
}

// DrawPanel fills the panel area, draws its border and writes its lines
// word-wrapped and centered inside. Cells outside the screen are clipped.
func DrawPanel(s Screen, p Panel) {
	if p.Area.Empty() {
		return
	}

	sw, sh := s.Size()
	set := func(x, y int, r rune, style tcell.Style) {
		if x >= 0 && y >= 0 && x < sw && y < sh {
			s.SetContent(x, y, r, nil, style)
		}
	}

	base := tcell.StyleDefault.Background(p.Background)
	a := p.Area
	for y := a.Y; y < a.Y+a.Height; y++ {
		for x := a.X; x < a.X+a.Width; x++ {
			set(x, y, ' ', base)
		}
	}

	inner := a
	if p.Border && a.Width >= 2 && a.Height >= 2 {
		drawBorder(a, base, set)
		inner = Rect{X: a.X + 1, Y: a.Y + 1, Width: a.Width - 2, Height: a.Height - 2}
	}
	if inner.Empty() {
		return
	}

	row := inner.Y
	for _, line := range p.Lines {
		style := lineStyle(base, line)
		for _, text := range wrap(line.Text, inner.Width) {
			if row >= inner.Y+inner.Height {
				return
			}
			x := inner.X + (inner.Width-runewidth.StringWidth(text))/2
			for _, r := range text {
				set(x, row, r, style)
				x += runewidth.RuneWidth(r)
			}
			row++
		}
	}
}

func drawBorder(a Rect, style tcell.Style, set func(x, y int, r rune, style tcell.Style)) {
	right, bottom := a.X+a.Width-1, a.Y+a.Height-1
	for x := a.X + 1; x < right; x++ {
		set(x, a.Y, tcell.RuneHLine, style)
		set(x, bottom, tcell.RuneHLine, style)
	}
	for y := a.Y + 1; y < bottom; y++ {
		set(a.X, y, tcell.RuneVLine, style)
		set(right, y, tcell.RuneVLine, style)
	}
	set(a.X, a.Y, tcell.RuneULCorner, style)
	set(right, a.Y, tcell.RuneURCorner, style)
	set(a.X, bottom, tcell.RuneLLCorner, style)
	set(right, bottom, tcell.RuneLRCorner, style)
}

func lineStyle(base tcell.Style, l Line) tcell.Style {
	style := base
	if l.Fg != tcell.ColorDefault {
		style = style.Foreground(l.Fg)
	}
	if l.Bg != tcell.ColorDefault {
		style = style.Background(l.Bg)
	}
	if l.Bold {
		style = style.Bold(true)
	}
	return style
}

// wrap splits text greedily on spaces so no line is wider than width.
// Words wider than width are cut. An empty text yields one empty line.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		cur   string
	)
	for _, word := range words {
		for runewidth.StringWidth(word) > width {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				return append(lines, "")
			}
			lines = append(lines, head)
			word = word[len(head):]
		}
		switch {
		case word == "":
		case cur == "":
			cur = word
		case runewidth.StringWidth(cur)+1+runewidth.StringWidth(word) <= width:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
