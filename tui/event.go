package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// EventKind discriminates the events the loop consumes
type EventKind uint8

const (
	EventInit EventKind = iota
	EventKey
	EventRender
)

func (k EventKind) String() string {
	switch k {
	case EventInit:
		return "Init"
	case EventKey:
		return "Key"
	case EventRender:
		return "Render"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// KeyKind tells presses apart from releases and auto-repeats
type KeyKind uint8

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// KeyEvent is a keystroke delivered by a Host
type KeyEvent struct {
	Key  tcell.Key
	Rune rune
	Kind KeyKind
}

// IsRune reports whether the event is the printable key r
func (k KeyEvent) IsRune(r rune) bool {
	return k.Key == tcell.KeyRune && k.Rune == r
}

// Event is one item on the loop's channel. Key is set only for EventKey.
type Event struct {
	Kind EventKind
	Key  KeyEvent
}
