package chrome

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/alexisbeaulieu97/vitrine/internal/catalog"
	"github.com/alexisbeaulieu97/vitrine/internal/logger"
)

// Direction is the visual direction of the latest carousel transition.
type Direction int

const (
	Backward Direction = -1
	None     Direction = 0
	Forward  Direction = 1
)

// CarouselState is the engine's observable state.
type CarouselState struct {
	Index     int
	Direction Direction
	Playing   bool
}

// Tick identifies one scheduled autoplay wake-up. The host delivers it back
// through Fire after the engine's interval has elapsed.
type Tick struct {
	ID  int
	Tag int
}

var lastEngineID int64

func nextEngineID() int {
	return int(atomic.AddInt64(&lastEngineID, 1))
}

// Engine drives the hero carousel. Every transition restarts the autoplay
// clock: it issues a fresh Tick and invalidates the previous one, so exactly
// one wake-up is live at any time.
type Engine struct {
	slides   []catalog.Slide
	interval time.Duration

	state  CarouselState
	id     int
	tag    int
	active bool

	log *logger.Logger
}

// NewEngine creates an inactive engine over slides.
func NewEngine(slides []catalog.Slide, interval time.Duration, log *logger.Logger) (*Engine, error) {
	if len(slides) == 0 {
		return nil, errors.New("carousel needs at least one slide")
	}
	if interval <= 0 {
		return nil, errors.New("carousel autoplay interval must be positive")
	}
	return &Engine{
		slides:   slides,
		interval: interval,
		id:       nextEngineID(),
		log:      log.Component("carousel"),
	}, nil
}

// Activate mounts the carousel at the first slide and starts autoplay.
func (e *Engine) Activate() Tick {
	e.active = true
	e.state = CarouselState{Index: 0, Direction: None, Playing: true}
	e.log.Debug("carousel activated")
	return e.reschedule()
}

// Deactivate stops autoplay. Ticks issued before this call become inert.
func (e *Engine) Deactivate() {
	if !e.active {
		return
	}
	e.active = false
	e.state.Playing = false
	e.tag++
	e.log.Debug("carousel deactivated")
}

// Active reports whether the carousel is mounted.
func (e *Engine) Active() bool {
	return e.active
}

// Advance steps forward, wrapping past the last slide. Like every transition
// it is refused while the carousel is unmounted.
func (e *Engine) Advance() (Tick, bool) {
	if !e.active {
		return Tick{}, false
	}
	e.state.Index = (e.state.Index + 1) % len(e.slides)
	e.state.Direction = Forward
	return e.reschedule(), true
}

// Retreat steps backward, wrapping past the first slide.
func (e *Engine) Retreat() (Tick, bool) {
	if !e.active {
		return Tick{}, false
	}
	n := len(e.slides)
	e.state.Index = (e.state.Index - 1 + n) % n
	e.state.Direction = Backward
	return e.reschedule(), true
}

// JumpTo shows slide index. Out-of-range indices are rejected without touching
// state or the autoplay clock. Jumping to the current slide keeps the state
// but still restarts the clock.
func (e *Engine) JumpTo(index int) (Tick, bool) {
	if !e.active {
		return Tick{}, false
	}
	if index < 0 || index >= len(e.slides) {
		e.log.DebugFields("jump rejected", map[string]any{"index": index, "slides": len(e.slides)})
		return Tick{}, false
	}
	switch {
	case index > e.state.Index:
		e.state.Direction = Forward
	case index < e.state.Index:
		e.state.Direction = Backward
	}
	e.state.Index = index
	return e.reschedule(), true
}

// Fire delivers an autoplay wake-up. Only the live tick of an active engine
// advances the carousel; the returned tick must be scheduled next.
func (e *Engine) Fire(t Tick) (Tick, bool) {
	if !e.active || t.ID != e.id || t.Tag != e.tag {
		return Tick{}, false
	}
	return e.Advance()
}

// Pending returns the live tick, if any.
func (e *Engine) Pending() (Tick, bool) {
	if !e.active {
		return Tick{}, false
	}
	return Tick{ID: e.id, Tag: e.tag}, true
}

func (e *Engine) reschedule() Tick {
	e.tag++
	return Tick{ID: e.id, Tag: e.tag}
}

// State returns a snapshot of the carousel state.
func (e *Engine) State() CarouselState {
	return e.state
}

// Current returns the slide on screen.
func (e *Engine) Current() catalog.Slide {
	return e.slides[e.state.Index]
}

// Slides returns the slide catalog.
func (e *Engine) Slides() []catalog.Slide {
	return e.slides
}

// Len returns the number of slides.
func (e *Engine) Len() int {
	return len(e.slides)
}

// Interval returns the autoplay period.
func (e *Engine) Interval() time.Duration {
	return e.interval
}
