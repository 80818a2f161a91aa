package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/furkankly/goffin/model"
	"github.com/furkankly/goffin/rules"
)

const (
	AliveBackground = tcell.ColorYellow
	DeadBackground  = tcell.ColorBlack

	LowColor  = tcell.ColorWhite
	MidColor  = tcell.ColorPurple
	HighColor = tcell.ColorBlue

	DieBadgeColor   = tcell.ColorRed
	SpawnBadgeColor = tcell.ColorYellow
)

const (
	LowLabel  = "ZERO OR ONE NEIGHBORS"
	MidLabel  = "TWO OR THREE NEIGHBORS"
	HighLabel = "FOUR OR MORE NEIGHBORS"

	DieBadge   = "WILL DIE"
	SpawnBadge = "WILL SPAWN"
)

// CellPanel describes how a single cell is drawn. The Area is left zero.
func CellPanel(cell model.Cell) Panel {
	label := Line{Bg: tcell.ColorDefault}
	badge := Line{Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}

	switch cell.Phase {
	case rules.PhaseLow:
		label.Text, label.Fg = LowLabel, LowColor
		if cell.Alive {
			badge = Line{Text: DieBadge, Fg: tcell.ColorDefault, Bg: DieBadgeColor, Bold: true}
		}
	case rules.PhaseMid:
		label.Text, label.Fg = MidLabel, MidColor
		if cell.WillSpawn {
			badge = Line{Text: SpawnBadge, Fg: tcell.ColorDefault, Bg: SpawnBadgeColor, Bold: true}
		}
	case rules.PhaseHigh:
		label.Text, label.Fg = HighLabel, HighColor
		if cell.Alive {
			badge = Line{Text: DieBadge, Fg: tcell.ColorDefault, Bg: DieBadgeColor, Bold: true}
		}
	}

	bg := DeadBackground
	if cell.Alive {
		bg = AliveBackground
	}

	return Panel{
		Background: bg,
		Border:     true,
		Lines:      []Line{label, badge},
	}
}

// Paint submits one panel per snapshot cell, laid out over the whole frame
func Paint(f Frame, s *model.Snapshot) {
	width, height := f.Size()
	rects := Layout(width, height, s.Rows, s.Cols)

	for r := range s.Rows {
		for c := range s.Cols {
			p := CellPanel(s.At(r, c))
			p.Area = rects[r][c]
			f.RenderPanel(p)
		}
	}
}
