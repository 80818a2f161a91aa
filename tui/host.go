package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/furkankly/goffin/render"
)

var (
	// ErrTerminalInit is the cause of a failed Enter; nothing needs restoring
	ErrTerminalInit = errors.New("terminal initialization failed")
	// ErrTerminalIO is the cause of a failed Draw
	ErrTerminalIO = errors.New("terminal i/o failed")
)

// Host owns the terminal device for the loop.
//
// Exit must be safe to call once Enter has succeeded, including after a
// failed Draw. Keys is read by the loop's producer only; the channel is
// closed when the key source ends.
type Host interface {
	Enter() error
	Exit() error
	Draw(paint func(render.Frame)) error
	Keys() <-chan KeyEvent
}

// TCellHost is a Host backed by a tcell screen. Init puts the terminal in raw
// mode on the alternate screen; Fini restores it.
type TCellHost struct {
	newScreen func() (tcell.Screen, error)

	screen  tcell.Screen
	keys    chan KeyEvent
	done    chan struct{}
	entered bool
}

// NewTCellHost returns a host for the controlling terminal
func NewTCellHost() *TCellHost {
	return &TCellHost{newScreen: tcell.NewScreen}
}

// NewTCellHostWithScreen returns a host driving an existing, uninitialized
// screen, such as a tcell simulation screen.
func NewTCellHostWithScreen(screen tcell.Screen) *TCellHost {
	return &TCellHost{newScreen: func() (tcell.Screen, error) { return screen, nil }}
}

func (h *TCellHost) Enter() error {
	if h.entered {
		return nil
	}

	screen, err := h.newScreen()
	if err != nil {
		return errors.Wrapf(ErrTerminalInit, "[TCellHost.Enter] create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		return errors.Wrapf(ErrTerminalInit, "[TCellHost.Enter] init screen: %v", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	h.screen = screen
	h.keys = make(chan KeyEvent)
	h.done = make(chan struct{})
	h.entered = true

	go h.pollKeys(screen, h.keys, h.done)
	return nil
}

func (h *TCellHost) Exit() error {
	if !h.entered {
		return nil
	}
	h.entered = false
	close(h.done)
	h.screen.Fini()
	return nil
}

func (h *TCellHost) Draw(paint func(render.Frame)) (err error) {
	if !h.entered {
		return errors.Wrap(ErrTerminalIO, "[TCellHost.Draw] terminal not entered")
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrTerminalIO, "[TCellHost.Draw] %v", r)
		}
	}()

	h.screen.Clear()
	paint(render.NewScreenFrame(h.screen))
	h.screen.Show()
	return nil
}

func (h *TCellHost) Keys() <-chan KeyEvent {
	return h.keys
}

// pollKeys forwards key events until the screen is finalized. tcell only
// reports presses.
func (h *TCellHost) pollKeys(screen tcell.Screen, keys chan<- KeyEvent, done <-chan struct{}) {
	defer close(keys)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		select {
		case keys <- KeyEvent{Key: key.Key(), Rune: key.Rune(), Kind: KeyPress}:
		case <-done:
			return
		}
	}
}
