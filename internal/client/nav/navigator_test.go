package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aka-Harsh/eventbook/internal/client/models"
)

func TestNew_StartsLoggedOut(t *testing.T) {
	n := New()

	assert.False(t, n.LoggedIn())
	assert.Equal(t, TabHome, n.ActiveTab())
	assert.Equal(t, ViewLanding, n.CurrentView())
	assert.Nil(t, n.Tabs())
}

func TestSetIdentity_DefaultTabPerRole(t *testing.T) {
	tests := []struct {
		role models.Role
		want Tab
	}{
		{models.RoleAdmin, TabDashboard},
		{models.RoleUser, TabEvents},
	}

	for _, tc := range tests {
		t.Run(string(tc.role), func(t *testing.T) {
			n := New()
			n.SetIdentity(tc.role)

			assert.True(t, n.LoggedIn())
			assert.Equal(t, tc.want, n.ActiveTab())
			assert.Equal(t, ViewTab, n.CurrentView())
		})
	}
}

func TestSelect_AllowedTabSwitches(t *testing.T) {
	n := New()
	n.SetIdentity(models.RoleUser)

	require.True(t, n.Select(TabReviews))
	assert.Equal(t, TabReviews, n.ActiveTab())
}

func TestSelect_OutsideRoleSetIsSilentlyRejected(t *testing.T) {
	n := New()
	n.SetIdentity(models.RoleUser)
	require.True(t, n.Select(TabBookings))

	// Admin-only tabs must not be reachable for a USER.
	assert.False(t, n.Select(TabDashboard))
	assert.False(t, n.Select(TabScanner))
	assert.False(t, n.Select(TabHome))
	assert.Equal(t, TabBookings, n.ActiveTab())
}

func TestSelect_WhileLoggedOutIsRejected(t *testing.T) {
	n := New()

	assert.False(t, n.Select(TabEvents))
	assert.Equal(t, TabHome, n.ActiveTab())
}

func TestClearIdentity_AlwaysReachesLoggedOut(t *testing.T) {
	for _, role := range []models.Role{models.RoleUser, models.RoleAdmin} {
		n := New()
		n.SetIdentity(role)
		n.ClearIdentity()

		assert.False(t, n.LoggedIn())
		assert.Equal(t, TabHome, n.ActiveTab())
		assert.Equal(t, ViewLanding, n.CurrentView())
	}
}

func TestIdentitySwitch_ResetsTabToNewRolesDefault(t *testing.T) {
	n := New()

	// An admin parks on the scanner tab, logs out, and a regular user
	// logs in: the stale tab must not leak into the new session.
	n.SetIdentity(models.RoleAdmin)
	require.True(t, n.Select(TabScanner))
	n.ClearIdentity()
	n.SetIdentity(models.RoleUser)

	assert.Equal(t, TabEvents, n.ActiveTab())
}

func TestRequestLogin_TogglesCredentialView(t *testing.T) {
	n := New()
	assert.Equal(t, ViewLanding, n.CurrentView())

	n.RequestLogin(true)
	assert.Equal(t, ViewLogin, n.CurrentView())

	n.RequestLogin(false)
	assert.Equal(t, ViewLanding, n.CurrentView())
}

func TestRequestLogin_ResetByTransitions(t *testing.T) {
	n := New()
	n.RequestLogin(true)
	n.SetIdentity(models.RoleUser)
	n.ClearIdentity()

	assert.Equal(t, ViewLanding, n.CurrentView())
}

func TestTabsFor_Sets(t *testing.T) {
	assert.Equal(t, []Tab{TabEvents, TabBookings, TabReviews}, TabsFor(models.RoleUser))
	assert.Equal(t, []Tab{TabDashboard, TabEvents, TabBookings, TabReviews, TabScanner}, TabsFor(models.RoleAdmin))
}
