package accordion

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// RoleButton is the control role every Header publishes.
const RoleButton = "button"

// Attrs is the accessibility data a Header publishes for assistive output.
type Attrs struct {
	Role     string
	Expanded bool
	Controls string // RegionID of the sibling Panel
	Label    string
}

// Header is the focusable control of an item. Activating it toggles the item.
type Header struct {
	id    ID
	title string
	ctrl  *Controller
}

// NewHeader binds a header to c. It returns ErrUsedOutsideScope if c is nil.
func NewHeader(c *Controller, id ID, title string) (*Header, error) {
	if c == nil {
		return nil, ErrUsedOutsideScope
	}
	return &Header{id: id, title: oneLine(title), ctrl: c}, nil
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// oneLine keeps a title on a single row.
func oneLine(title string) string { return lineBreaks.Replace(title) }

func (h *Header) ID() ID           { return h.id }
func (h *Header) Title() string    { return h.title }
func (h *Header) Controls() string { return RegionID(h.id) }

// Activate toggles the header's item. Pointer and keyboard activation both
// end up here.
func (h *Header) Activate() {
	h.controller().Toggle(h.id)
}

// Expanded reports whether the header's item is the open one.
func (h *Header) Expanded() bool {
	return h.controller().IsOpen(h.id)
}

func (h *Header) Attrs() Attrs {
	return Attrs{
		Role:     RoleButton,
		Expanded: h.Expanded(),
		Controls: h.Controls(),
		Label:    ansi.Strip(h.title),
	}
}

// Announce describes the header the way a screen reader would read it,
// e.g. "What is Go?, button, collapsed".
func (h *Header) Announce() string {
	a := h.Attrs()
	state := "collapsed"
	if a.Expanded {
		state = "expanded"
	}
	return fmt.Sprintf("%s, %s, %s", a.Label, a.Role, state)
}

func (h *Header) controller() *Controller {
	if h == nil || h.ctrl == nil {
		panic(ErrUsedOutsideScope)
	}
	return h.ctrl
}

// RegionID is the id of the panel region belonging to item id.
func RegionID(id ID) string {
	return string(id) + "-panel"
}
