package tui

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/furkankly/goffin/model"
	"github.com/furkankly/goffin/render"
	"github.com/furkankly/goffin/utils"
)

const (
	// DefaultTickInterval is the time between generations
	DefaultTickInterval = time.Second

	quitKey = 'q'
)

// Option configures a Loop
type Option func(*Loop)

// WithTickInterval sets the time between Render events
func WithTickInterval(d time.Duration) Option {
	return func(l *Loop) { l.interval = d }
}

// WithTicks replaces the interval timer with an external tick source
func WithTicks(ticks <-chan time.Time) Option {
	return func(l *Loop) { l.ticks = ticks }
}

func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

func WithStats(stats *utils.Stats) Option {
	return func(l *Loop) { l.stats = stats }
}

func WithSnapshotPool(pool *model.SnapshotPool) Option {
	return func(l *Loop) { l.pool = pool }
}

// WithDrawOnInit paints the seed once on Init, before the first generation
func WithDrawOnInit(draw bool) Option {
	return func(l *Loop) { l.drawOnInit = draw }
}

/*
Loop drives a grid from timer ticks and key presses.

A producer goroutine turns ticks into Render events and key presses into Key
events, queueing them without bound in arrival order. Run consumes them one
at a time and is the only code touching the grid and the host's output.
*/
type Loop struct {
	host Host
	grid *model.Grid

	interval   time.Duration
	ticks      <-chan time.Time
	logger     *log.Logger
	stats      *utils.Stats
	pool       *model.SnapshotPool
	drawOnInit bool

	lastFrame time.Time
}

func NewLoop(host Host, grid *model.Grid, opts ...Option) *Loop {
	l := &Loop{
		host:     host,
		grid:     grid,
		interval: DefaultTickInterval,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.stats == nil {
		l.stats = utils.NewStats()
	}
	if l.pool == nil {
		l.pool = model.NewSnapshotPool()
	}
	return l
}

// Stats returns the loop's running statistics
func (l *Loop) Stats() *utils.Stats {
	return l.stats
}

// Run enters the terminal, processes events until quit, cancellation or a
// closed channel, and always exits the terminal it entered. A failed Enter
// is returned as is; a failed Draw ends the run with its error.
func (l *Loop) Run(ctx context.Context) (err error) {
	if err := l.host.Enter(); err != nil {
		return err
	}
	l.logger.Printf("terminal entered, grid %dx%d", l.grid.Rows(), l.grid.Cols())

	defer func() {
		if exitErr := l.host.Exit(); exitErr != nil && err == nil {
			err = errors.Wrap(exitErr, "[Loop.Run] terminal teardown")
		}
		l.logger.Printf("terminal exited after %d generations", l.grid.Generation())
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan Event)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		l.produce(egCtx, events)
		return nil
	})

	l.lastFrame = time.Now()
	err = l.consume(ctx, events)

	// Producer stops at its next select
	cancel()
	_ = eg.Wait()
	return err
}

// produce multiplexes ticks and key presses onto out until ctx is done.
// Init goes first. Pending events queue in a slice, so a slow consumer
// never makes ticks or keys drop.
func (l *Loop) produce(ctx context.Context, out chan<- Event) {
	defer close(out)

	ticks := l.ticks
	if ticks == nil {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		ticks = ticker.C
	}
	keys := l.host.Keys()

	pending := []Event{{Kind: EventInit}}
	for {
		var (
			send chan<- Event
			next Event
		)
		if len(pending) > 0 {
			send, next = out, pending[0]
		}

		select {
		case <-ctx.Done():
			return
		case send <- next:
			pending = pending[1:]
		case <-ticks:
			pending = append(pending, Event{Kind: EventRender})
		case key, ok := <-keys:
			if !ok {
				// Key source is gone; keep ticking until cancelled
				keys = nil
				continue
			}
			if key.Kind == KeyPress {
				pending = append(pending, Event{Kind: EventKey, Key: key})
			}
		}
	}
}

// consume handles events in order until one ends the run
func (l *Loop) consume(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			l.logger.Println("context cancelled")
			return nil
		case ev, ok := <-events:
			if !ok {
				l.logger.Println("event channel closed")
				return nil
			}
			stop, err := l.handle(ev)
			if err != nil {
				l.logger.Printf("stopping on %v event: %v", ev.Kind, err)
				return err
			}
			if stop {
				return nil
			}
		}
	}
}

func (l *Loop) handle(ev Event) (stop bool, err error) {
	switch ev.Kind {
	case EventInit:
		if l.drawOnInit {
			return false, l.draw()
		}
	case EventKey:
		if ev.Key.IsRune(quitKey) {
			l.logger.Println("quit key pressed")
			return true, nil
		}
	case EventRender:
		l.grid.Advance()
		if err := l.draw(); err != nil {
			return false, err
		}
		now := time.Now()
		l.stats.Update(int(l.grid.Generation()), l.grid.CountLivingCells(), now.Sub(l.lastFrame))
		l.lastFrame = now
	}
	return false, nil
}

func (l *Loop) draw() error {
	snap := l.pool.Take(l.grid)
	defer l.pool.Put(snap)

	err := l.host.Draw(func(f render.Frame) {
		render.Paint(f, snap)
	})
	if err != nil {
		return errors.Wrapf(err, "[Loop.draw] generation %d", snap.Generation)
	}
	return nil
}
