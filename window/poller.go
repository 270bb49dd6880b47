package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flycam/ecs"
)

// Poller turns ebiten's polled window state into events on the world's
// event stream. It must run before any system that reads the stream.
type Poller struct {
	focused func() bool
	cursor  func() (int, int)

	focusKnown bool
	lastFocus  bool

	cursorKnown  bool
	lastX, lastY int
}

func NewPoller() *Poller {
	return &Poller{
		focused: ebiten.IsFocused,
		cursor:  ebiten.CursorPosition,
	}
}

func (p *Poller) Update(w *ecs.World) {
	events := w.Events()
	if events == nil {
		return
	}

	focused := p.focused()
	if !p.focusKnown || focused != p.lastFocus {
		events.Write(ecs.WindowFocusChanged{Focused: focused})
		p.focusKnown = true
		p.lastFocus = focused
		// The cursor may warp while focus moves; don't report the jump.
		p.cursorKnown = false
	}

	x, y := p.cursor()
	if p.cursorKnown && (x != p.lastX || y != p.lastY) {
		events.Write(ecs.DeviceMotion{DX: float64(x - p.lastX), DY: float64(y - p.lastY)})
	}
	p.lastX, p.lastY = x, y
	p.cursorKnown = true
}
