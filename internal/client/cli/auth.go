package cli

import (
	"context"

	"github.com/aka-Harsh/eventbook/internal/client/models"
	"github.com/aka-Harsh/eventbook/internal/client/nav"
	"github.com/aka-Harsh/eventbook/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and attempts to authenticate through the
// session store. On success the navigator jumps to the role's default tab.
// On failure the message from the store is shown and the credential view
// stays up so the user can retry. The password bytes are wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.printErr("Already logged in. Use 'logout' first.")
		return nil
	}
	a.nav.RequestLogin(true)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		a.printErr("Email and password are required")
		return common.ErrValidation
	}

	res := a.session.Login(ctx, email, string(password))
	if !res.OK {
		a.printErr(res.Message)
		a.render(ctx)
		return nil
	}

	u := a.session.Current()
	a.nav.SetIdentity(u.Role)
	a.printOK("Welcome, " + u.Name + "!")
	a.render(ctx)
	return nil
}

// Register prompts for a new-account profile and submits it. It does not
// log the user in; a successful registration is followed by a hint to use
// 'login'.
func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		a.printErr("Already logged in. Use 'logout' first.")
		return nil
	}
	a.nav.RequestLogin(true)

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := getSimpleText(a.reader, "Role (USER or ADMIN, empty for USER)", a.out)
	if err != nil {
		return err
	}
	if role == "" {
		role = string(models.RoleUser)
	}

	if name == "" || email == "" || len(password) == 0 {
		a.printErr("Name, email and password are required")
		return common.ErrValidation
	}
	if !models.Role(role).Valid() {
		a.printErr("Role must be USER or ADMIN")
		return common.ErrValidation
	}

	res := a.session.Register(ctx, models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: string(password),
		Role:     models.Role(role),
	})
	if !res.OK {
		a.printErr(res.Message)
		return nil
	}

	a.printOK("Account created. Use 'login' to sign in.")
	return nil
}

// Logout clears the session and returns to the landing view. It always
// succeeds; there is no server round-trip.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return nil
	}
	a.session.Logout(ctx)
	a.nav.ClearIdentity()
	a.render(ctx)
	return nil
}

// Back leaves the credential view for the landing view.
func (a *App) Back(ctx context.Context) error {
	a.nav.RequestLogin(false)
	a.render(ctx)
	return nil
}

// SelectTab switches the active tab. A tab outside the current role's set
// is rejected by the navigator with no state change and no output.
func (a *App) SelectTab(ctx context.Context, t nav.Tab) error {
	if a.nav.Select(t) {
		a.render(ctx)
	}
	return nil
}

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		a.printErr("Please log in first.")
		return false
	}
	return true
}

func (a *App) requireAdmin() bool {
	if !a.requireLogin() {
		return false
	}
	if !a.isAdmin() {
		a.printErr("This action is for administrators.")
		return false
	}
	return true
}
