// Package nav implements the navigation state machine: which top-level
// view is shown, which tab is active, and which tabs the current role may
// reach. It is pure state; rendering and data fetching live elsewhere.
package nav

import "github.com/aka-Harsh/eventbook/internal/client/models"

// Tab names a top-level view reachable through navigation.
type Tab string

const (
	TabHome      Tab = "home"
	TabDashboard Tab = "dashboard"
	TabEvents    Tab = "events"
	TabBookings  Tab = "bookings"
	TabReviews   Tab = "reviews"
	TabScanner   Tab = "qr-scanner"
)

// View is the tagged variant consumed once by the top-level dispatcher,
// replacing role conditionals scattered through leaf views.
type View int

const (
	// ViewLanding is the unauthenticated welcome screen.
	ViewLanding View = iota
	// ViewLogin is the unauthenticated credential-entry screen.
	ViewLogin
	// ViewTab renders the active tab for the logged-in role.
	ViewTab
)

var (
	userTabs  = []Tab{TabEvents, TabBookings, TabReviews}
	adminTabs = []Tab{TabDashboard, TabEvents, TabBookings, TabReviews, TabScanner}
)

// DefaultTab is where a freshly authenticated identity lands: admins on the
// operations dashboard, users on the event catalog.
func DefaultTab(role models.Role) Tab {
	if role == models.RoleAdmin {
		return TabDashboard
	}
	return TabEvents
}

// TabsFor returns the ordered tab set a role may select.
func TabsFor(role models.Role) []Tab {
	if role == models.RoleAdmin {
		return adminTabs
	}
	return userTabs
}

// Navigator tracks the active tab for the current identity. The zero value
// is not usable; construct with New.
type Navigator struct {
	loggedIn bool
	role     models.Role
	active   Tab

	// loginRequested picks between landing and credential views while
	// logged out. Pure UI flag, false at start.
	loginRequested bool
}

// New starts the machine in the logged-out state.
func New() *Navigator {
	return &Navigator{active: TabHome}
}

// SetIdentity transitions to the logged-in state for role, resetting the
// active tab to that role's default. It runs on both login and startup
// rehydration.
func (n *Navigator) SetIdentity(role models.Role) {
	n.loggedIn = true
	n.role = role
	n.active = DefaultTab(role)
	n.loginRequested = false
}

// ClearIdentity transitions to logged out from any state.
func (n *Navigator) ClearIdentity() {
	n.loggedIn = false
	n.role = ""
	n.active = TabHome
	n.loginRequested = false
}

// Select switches the active tab and reports whether the switch happened.
// A tab outside the current role's allowed set is rejected silently, with
// no state change.
func (n *Navigator) Select(t Tab) bool {
	if !n.loggedIn {
		return false
	}
	for _, allowed := range TabsFor(n.role) {
		if t == allowed {
			n.active = t
			return true
		}
	}
	return false
}

// RequestLogin toggles the logged-out credential view. It has no effect on
// logged-in state beyond being reset by the next transition.
func (n *Navigator) RequestLogin(v bool) {
	n.loginRequested = v
}

// ActiveTab returns the current tab.
func (n *Navigator) ActiveTab() Tab { return n.active }

// Role returns the role the machine is scoped to, empty when logged out.
func (n *Navigator) Role() models.Role { return n.role }

// LoggedIn reports whether the machine is in a logged-in state.
func (n *Navigator) LoggedIn() bool { return n.loggedIn }

// Tabs returns the tab set selectable right now, nil when logged out.
func (n *Navigator) Tabs() []Tab {
	if !n.loggedIn {
		return nil
	}
	return TabsFor(n.role)
}

// CurrentView resolves the single top-level view to render.
func (n *Navigator) CurrentView() View {
	switch {
	case !n.loggedIn && !n.loginRequested:
		return ViewLanding
	case !n.loggedIn:
		return ViewLogin
	default:
		return ViewTab
	}
}
