package cli

import (
	"context"
	"os"
)

// getSimpleText, getPassword and confirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	confirm       = Confirm
)

// Register prompts for an email, password and optional display name and
// creates a new account. On success the session is established and the REPL
// switches to the authenticated command set on its next prompt.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.auth.Register(ctx, email, password, name)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Welcome! Registered as", sess.UserID)
	return nil
}

// Login prompts for credentials and authenticates. A failure leaves the
// session as it was; the message is shown and the prompt returns.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, email, password)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in as", sess.UserID)
	return nil
}

// Logout clears the session; both halves of the stored pair go together, so
// the very next request goes out unauthenticated.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.lastList = nil
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI(ctx context.Context) error {
	sess := a.sessions.Current()
	if sess.IsAnonymous() {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn("User id:", sess.UserID)
	return nil
}
