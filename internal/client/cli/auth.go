package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookswap/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and signs in through the session manager.
// Failures come back as a structured result and are printed, never thrown.
func (a *App) Login(ctx context.Context) error {
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
		fmt.Fprintln(a.out, "Email and password are required.")
		return nil
	}

	res := a.session.Login(ctx, email, string(password))
	if !res.Success {
		fmt.Fprintf(a.out, "Login failed: %s\n", res.Message)
		return nil
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.User().Name)
	return nil
}

// Register prompts for account details and creates a new account. On
// success the user is signed in immediately.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter display name", a.out)
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

	if name == "" || email == "" || len(password) == 0 {
		fmt.Fprintln(a.out, "Name, email and password are required.")
		return nil
	}

	res := a.session.Register(ctx, name, email, string(password))
	if !res.Success {
		fmt.Fprintf(a.out, "Registration failed: %s\n", res.Message)
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.User().Name)
	return nil
}

// Logout drops the session. Safe to call when already anonymous.
func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI() {
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", u.Name, u.Email, u.ID)
}
