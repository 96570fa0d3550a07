package accordion

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// Strategy selects how a Panel follows its item's open state.
type Strategy int

const (
	// StrategyHard shows the body only while the item is open.
	StrategyHard Strategy = iota
	// StrategyAnimated keeps the body mounted and springs its visible
	// height between zero and the measured natural height.
	StrategyAnimated
)

func (s Strategy) String() string {
	if s == StrategyAnimated {
		return "animated"
	}
	return "hard"
}

// DefaultFPS is the frame rate used for animated panels.
const DefaultFPS = 60

const (
	springFrequency = 7.0
	springDamping   = 1.0
	settleEpsilon   = 0.01
)

// Panel is the content region of an item.
type Panel struct {
	id       ID
	body     string
	ctrl     *Controller
	strategy Strategy

	spring  harmonica.Spring
	natural int
	extent  float64
	vel     float64
	target  float64
}

// NewPanel binds a panel to c. It returns ErrUsedOutsideScope if c is nil.
func NewPanel(c *Controller, id ID, body string, s Strategy) (*Panel, error) {
	if c == nil {
		return nil, ErrUsedOutsideScope
	}
	p := &Panel{id: id, body: body, ctrl: c}
	p.SetStrategy(s, DefaultFPS)
	return p, nil
}

func (p *Panel) ID() ID             { return p.id }
func (p *Panel) Body() string       { return p.body }
func (p *Panel) RegionID() string   { return RegionID(p.id) }
func (p *Panel) Strategy() Strategy { return p.strategy }

// SetStrategy switches strategy. The visible extent jumps to the settled
// value for the current state.
func (p *Panel) SetStrategy(s Strategy, fps int) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	p.strategy = s
	p.spring = harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping)
	p.target = p.goal()
	p.extent, p.vel = p.target, 0
}

// Expanded reports whether the panel's item is the open one.
func (p *Panel) Expanded() bool {
	return p.controller().IsOpen(p.id)
}

// Visible reports whether any part of the body is on screen. A closing
// animated panel stays visible until its extent reaches zero.
func (p *Panel) Visible() bool {
	if p.Expanded() {
		return true
	}
	return p.strategy == StrategyAnimated && p.Extent() > 0
}

// Measure records the natural height of the rendered body and aims the
// transition at it when open, or at zero when closed. Call it after the
// controller state changed so the measurement sees current geometry.
func (p *Panel) Measure(rendered string) {
	p.natural = lipgloss.Height(rendered)
	p.target = p.goal()
	if p.strategy == StrategyHard {
		p.extent, p.vel = p.target, 0
	}
}

// Natural is the last measured height of the body in lines.
func (p *Panel) Natural() int { return p.natural }

// Extent is the number of body lines currently shown.
func (p *Panel) Extent() int {
	n := int(math.Round(p.extent))
	if n < 0 {
		return 0
	}
	if n > p.natural {
		return p.natural
	}
	return n
}

// Settled reports whether the panel has reached its target extent.
func (p *Panel) Settled() bool {
	return p.extent == p.target && p.vel == 0
}

// Step advances the transition by one frame and reports whether the panel
// has settled.
func (p *Panel) Step() bool {
	if p.Settled() {
		return true
	}
	p.extent, p.vel = p.spring.Update(p.extent, p.vel, p.target)
	if math.Abs(p.extent-p.target) < settleEpsilon && math.Abs(p.vel) < settleEpsilon {
		p.extent, p.vel = p.target, 0
		return true
	}
	return false
}

// Clip returns the part of rendered that the panel currently shows.
func (p *Panel) Clip(rendered string) string {
	if p.strategy == StrategyHard {
		if p.Expanded() {
			return rendered
		}
		return ""
	}
	n := p.Extent()
	if n == 0 {
		return ""
	}
	lines := strings.Split(rendered, "\n")
	if n < len(lines) {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

func (p *Panel) goal() float64 {
	if p.Expanded() {
		return float64(p.natural)
	}
	return 0
}

func (p *Panel) controller() *Controller {
	if p == nil || p.ctrl == nil {
		panic(ErrUsedOutsideScope)
	}
	return p.ctrl
}
