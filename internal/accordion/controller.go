// Package accordion implements a set of collapsible sections where at most
// one section is expanded at a time.
//
// A Controller holds the single open identifier. Headers and Panels are
// handed the Controller explicitly and derive their state from it; a Group
// owns the Controller together with the ordered header registry used for
// keyboard focus, and Model renders a Group as a Bubble Tea program.
package accordion

// ID identifies one header/panel pair within a Controller.
// Uniqueness is up to the caller.
type ID string

// Controller tracks which item, if any, is expanded.
// The zero value has nothing open.
type Controller struct {
	open    ID
	hasOpen bool
}

// NewController returns a Controller with every item closed.
func NewController() *Controller {
	return &Controller{}
}

// Toggle collapses id when it is the open item, otherwise opens it,
// closing whichever item was open before. Any id is accepted, including
// ones no Header carries.
func (c *Controller) Toggle(id ID) {
	if c.hasOpen && c.open == id {
		c.open, c.hasOpen = "", false
		return
	}
	c.open, c.hasOpen = id, true
}

// IsOpen reports whether id is the open item.
func (c *Controller) IsOpen(id ID) bool {
	return c.hasOpen && c.open == id
}

// Open returns the open item, if any.
func (c *Controller) Open() (ID, bool) {
	return c.open, c.hasOpen
}
