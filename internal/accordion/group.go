package accordion

// Item pairs the Header and Panel of one identifier. It holds no state of
// its own; openness always comes from the Controller.
type Item struct {
	ID     ID
	Header *Header
	Panel  *Panel
}

// Group owns a Controller for its lifetime and keeps the registered
// headers in display order for roving focus.
type Group struct {
	ctrl     *Controller
	items    []*Item
	focus    int
	strategy Strategy
	fps      int

	// OnFocusChange, if set, is called whenever focus moves to a
	// different item.
	OnFocusChange func(from, to ID)
}

// NewGroup returns an empty Group using the hard panel strategy.
func NewGroup() *Group {
	return &Group{ctrl: NewController(), fps: DefaultFPS}
}

// Controller returns the group's controller.
func (g *Group) Controller() *Controller { return g.ctrl }

// Strategy returns the panel strategy new items are created with.
func (g *Group) Strategy() Strategy { return g.strategy }

// FPS returns the frame rate of animated panels.
func (g *Group) FPS() int { return g.fps }

// SetStrategy changes the strategy of every current and future panel.
func (g *Group) SetStrategy(s Strategy, fps int) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	g.strategy, g.fps = s, fps
	for _, it := range g.items {
		it.Panel.SetStrategy(s, fps)
	}
}

// Add registers a new item at the end of the focus order.
func (g *Group) Add(id ID, title, body string) *Item {
	it := &Item{
		ID:     id,
		Header: &Header{id: id, title: oneLine(title), ctrl: g.ctrl},
		Panel:  &Panel{id: id, body: body, ctrl: g.ctrl},
	}
	it.Panel.SetStrategy(g.strategy, g.fps)
	g.items = append(g.items, it)
	return it
}

// Remove unregisters id. An open item is collapsed first.
func (g *Group) Remove(id ID) bool {
	i := g.Index(id)
	if i < 0 {
		return false
	}
	if g.ctrl.IsOpen(id) {
		g.ctrl.Toggle(id)
	}
	g.items = append(g.items[:i], g.items[i+1:]...)
	if g.focus > i || g.focus >= len(g.items) {
		g.focus--
	}
	if g.focus < 0 {
		g.focus = 0
	}
	return true
}

// Items returns the registered items in order.
func (g *Group) Items() []*Item {
	out := make([]*Item, len(g.items))
	copy(out, g.items)
	return out
}

func (g *Group) Len() int { return len(g.items) }

// Index returns the position of id, or -1.
func (g *Group) Index(id ID) int {
	for i, it := range g.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Item looks up a registered item.
func (g *Group) Item(id ID) (*Item, bool) {
	if i := g.Index(id); i >= 0 {
		return g.items[i], true
	}
	return nil, false
}

// Toggle toggles id on the group's controller.
func (g *Group) Toggle(id ID) { g.ctrl.Toggle(id) }

// IsOpen reports whether id is the open item.
func (g *Group) IsOpen(id ID) bool { return g.ctrl.IsOpen(id) }

// Focused returns the item holding focus.
func (g *Group) Focused() (*Item, bool) {
	if len(g.items) == 0 {
		return nil, false
	}
	return g.items[g.focus], true
}

// FocusIndex returns the position of the focused item.
func (g *Group) FocusIndex() int { return g.focus }

// ActivateFocused toggles the focused item and returns its id.
func (g *Group) ActivateFocused() (ID, bool) {
	it, ok := g.Focused()
	if !ok {
		return "", false
	}
	it.Header.Activate()
	return it.ID, true
}

// FocusNext moves focus to the next header, wrapping from the last to the
// first, and returns the newly focused id.
func (g *Group) FocusNext() ID {
	if len(g.items) == 0 {
		return ""
	}
	return g.moveTo((g.focus + 1) % len(g.items))
}

// FocusPrev moves focus to the previous header, wrapping from the first to
// the last.
func (g *Group) FocusPrev() ID {
	if len(g.items) == 0 {
		return ""
	}
	return g.moveTo((g.focus - 1 + len(g.items)) % len(g.items))
}

func (g *Group) FocusFirst() ID {
	if len(g.items) == 0 {
		return ""
	}
	return g.moveTo(0)
}

func (g *Group) FocusLast() ID {
	if len(g.items) == 0 {
		return ""
	}
	return g.moveTo(len(g.items) - 1)
}

// Focus moves focus to id. It returns false if id is not registered.
func (g *Group) Focus(id ID) bool {
	i := g.Index(id)
	if i < 0 {
		return false
	}
	g.moveTo(i)
	return true
}

func (g *Group) moveTo(i int) ID {
	from := g.items[g.focus].ID
	g.focus = i
	to := g.items[i].ID
	if g.OnFocusChange != nil && from != to {
		g.OnFocusChange(from, to)
	}
	return to
}
