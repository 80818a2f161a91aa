package render

import (
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/furkankly/goffin/model"
	"github.com/furkankly/goffin/rules"
)

// fakeScreen records the last rune and style written per position
type fakeScreen struct {
	width, height int
	runes         map[[2]int]rune
	styles        map[[2]int]tcell.Style
}

func newFakeScreen(width, height int) *fakeScreen {
	return &fakeScreen{
		width:  width,
		height: height,
		runes:  make(map[[2]int]rune),
		styles: make(map[[2]int]tcell.Style),
	}
}

func (s *fakeScreen) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		panic("write outside screen")
	}
	s.runes[[2]int{x, y}] = primary
	s.styles[[2]int{x, y}] = style
}

func (s *fakeScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *fakeScreen) row(y int) string {
	var b strings.Builder
	for x := range s.width {
		r, ok := s.runes[[2]int{x, y}]
		if !ok {
			r = '?'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// recordingFrame keeps every submitted panel
type recordingFrame struct {
	width, height int
	panels        []Panel
}

func (f *recordingFrame) Size() (int, int)    { return f.width, f.height }
func (f *recordingFrame) RenderPanel(p Panel) { f.panels = append(f.panels, p) }

func TestLayoutCoversArea(t *testing.T) {
	tests := []struct{ width, height, rows, cols int }{
		{80, 24, 6, 11},
		{11, 6, 6, 11},
		{7, 3, 6, 11},
		{100, 50, 1, 1},
	}

	for _, tt := range tests {
		rects := Layout(tt.width, tt.height, tt.rows, tt.cols)
		if len(rects) != tt.rows {
			t.Fatalf("Layout returned %d rows, want %d", len(rects), tt.rows)
		}

		covered := make(map[[2]int]int)
		for _, row := range rects {
			if len(row) != tt.cols {
				t.Fatalf("Layout row has %d cols, want %d", len(row), tt.cols)
			}
			for _, rect := range row {
				for y := rect.Y; y < rect.Y+rect.Height; y++ {
					for x := rect.X; x < rect.X+rect.Width; x++ {
						covered[[2]int{x, y}]++
					}
				}
			}
		}
		if len(covered) != tt.width*tt.height {
			t.Errorf("%+v: covered %d cells, want %d", tt, len(covered), tt.width*tt.height)
		}
		for pos, n := range covered {
			if n != 1 {
				t.Errorf("%+v: cell %v covered %d times", tt, pos, n)
			}
		}
	}

	if Layout(10, 10, 0, 3) != nil {
		t.Error("Layout with zero rows should be nil")
	}
}

func TestCellPanel(t *testing.T) {
	tests := []struct {
		name  string
		cell  model.Cell
		bg    tcell.Color
		label string
		fg    tcell.Color
		badge string
		badBg tcell.Color
	}{
		{"low dead", model.Cell{Phase: rules.PhaseLow}, DeadBackground, LowLabel, LowColor, "", tcell.ColorDefault},
		{"low alive", model.Cell{Phase: rules.PhaseLow, Alive: true}, AliveBackground, LowLabel, LowColor, DieBadge, DieBadgeColor},
		{"mid alive", model.Cell{Phase: rules.PhaseMid, Alive: true}, AliveBackground, MidLabel, MidColor, "", tcell.ColorDefault},
		{"mid dead", model.Cell{Phase: rules.PhaseMid}, DeadBackground, MidLabel, MidColor, "", tcell.ColorDefault},
		{"mid spawning", model.Cell{Phase: rules.PhaseMid, WillSpawn: true}, DeadBackground, MidLabel, MidColor, SpawnBadge, SpawnBadgeColor},
		{"high alive", model.Cell{Phase: rules.PhaseHigh, Alive: true}, AliveBackground, HighLabel, HighColor, DieBadge, DieBadgeColor},
		{"high dead", model.Cell{Phase: rules.PhaseHigh}, DeadBackground, HighLabel, HighColor, "", tcell.ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CellPanel(tt.cell)
			if p.Background != tt.bg {
				t.Errorf("background = %v, want %v", p.Background, tt.bg)
			}
			if len(p.Lines) != 2 {
				t.Fatalf("got %d lines, want 2", len(p.Lines))
			}
			if p.Lines[0].Text != tt.label || p.Lines[0].Fg != tt.fg {
				t.Errorf("label = %q/%v, want %q/%v", p.Lines[0].Text, p.Lines[0].Fg, tt.label, tt.fg)
			}
			if p.Lines[1].Text != tt.badge || p.Lines[1].Bg != tt.badBg {
				t.Errorf("badge = %q/%v, want %q/%v", p.Lines[1].Text, p.Lines[1].Bg, tt.badge, tt.badBg)
			}
			if tt.badge != "" && !p.Lines[1].Bold {
				t.Error("badge should be bold")
			}
		})
	}
}

func TestPaintSubmitsOnePanelPerCell(t *testing.T) {
	g, err := model.NewGrid(model.ReferenceSeed())
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	snap := g.Snapshot()
	f := &recordingFrame{width: 110, height: 36}

	Paint(f, snap)

	if len(f.panels) != 66 {
		t.Fatalf("painted %d panels, want 66", len(f.panels))
	}
	// Row-major order; (1, 5) is the alive center of the seed
	p := f.panels[1*11+5]
	if p.Area != (Rect{X: 50, Y: 6, Width: 10, Height: 6}) {
		t.Errorf("panel (1, 5) area = %+v", p.Area)
	}
	if p.Background != AliveBackground || p.Lines[0].Text != HighLabel {
		t.Errorf("panel (1, 5) = %+v", p)
	}

	// Deterministic for the same snapshot and size
	again := &recordingFrame{width: 110, height: 36}
	Paint(again, snap)
	for i := range f.panels {
		a, b := f.panels[i], again.panels[i]
		if a.Area != b.Area || a.Background != b.Background || !slices.Equal(a.Lines, b.Lines) {
			t.Fatalf("panel %d differs between paints", i)
		}
	}
}

func TestDrawPanel(t *testing.T) {
	s := newFakeScreen(12, 5)
	DrawPanel(s, Panel{
		Area:       Rect{X: 0, Y: 0, Width: 12, Height: 5},
		Background: tcell.ColorBlack,
		Border:     true,
		Lines: []Line{
			{Text: "TWO OR THREE", Fg: tcell.ColorPurple},
			{Text: "SPAWN", Bg: tcell.ColorYellow, Bold: true},
		},
	})

	want := []string{
		"┌──────────┐",
		"│  TWO OR  │",
		"│  THREE   │",
		"│  SPAWN   │",
		"└──────────┘",
	}
	for y, line := range want {
		if got := s.row(y); got != line {
			t.Errorf("row %d = %q, want %q", y, got, line)
		}
	}

	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	if got := s.styles[[2]int{0, 0}]; got != base {
		t.Errorf("border style = %v, want %v", got, base)
	}
	if got, want := s.styles[[2]int{4, 1}], base.Foreground(tcell.ColorPurple); got != want {
		t.Errorf("label style = %v, want %v", got, want)
	}
	if got, want := s.styles[[2]int{3, 3}], base.Background(tcell.ColorYellow).Bold(true); got != want {
		t.Errorf("badge style = %v, want %v", got, want)
	}
	if got := s.styles[[2]int{1, 3}]; got != base {
		t.Errorf("padding beside badge = %v, want panel background", got)
	}
}

func TestDrawPanelClipsAndSkipsEmpty(t *testing.T) {
	s := newFakeScreen(4, 2)
	DrawPanel(s, Panel{Area: Rect{X: 2, Y: 1, Width: 6, Height: 6}, Border: true, Lines: []Line{{Text: "CLIPPED TEXT"}}})
	DrawPanel(s, Panel{Area: Rect{X: 0, Y: 0, Width: 0, Height: 3}})

	if _, ok := s.runes[[2]int{0, 0}]; ok {
		t.Error("empty panel wrote to the screen")
	}
	if r := s.runes[[2]int{2, 1}]; r != tcell.RuneULCorner {
		t.Errorf("corner = %q, want %q", r, tcell.RuneULCorner)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 5, []string{""}},
		{"ZERO OR ONE NEIGHBORS", 30, []string{"ZERO OR ONE NEIGHBORS"}},
		{"ZERO OR ONE NEIGHBORS", 11, []string{"ZERO OR ONE", "NEIGHBORS"}},
		{"NEIGHBORS", 4, []string{"NEIG", "HBOR", "S"}},
		{"A NEIGHBORS", 4, []string{"A", "NEIG", "HBOR", "S"}},
	}

	for _, tt := range tests {
		if got := wrap(tt.text, tt.width); !slices.Equal(got, tt.want) {
			t.Errorf("wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
