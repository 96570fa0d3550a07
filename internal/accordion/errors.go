package accordion

import "errors"

// ErrUsedOutsideScope is returned, or raised as a panic value, when a Header
// or Panel is built or used without a Controller.
var ErrUsedOutsideScope = errors.New("accordion: header and panel must be used within an accordion")
