package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gamestack/internal/client/models"
	"github.com/dmitrijs2005/gamestack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for account details and registers a new GameStack user.
//
// The password byte slice is wiped before returning. Any I/O or service
// error is returned unchanged.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.authService.Signup(ctx, models.SignupInput{
		Username: username,
		Email:    email,
		Name:     name,
		Password: string(password),
	})
	if err != nil {
		return err
	}

	if msg == "" {
		msg = "Success!"
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// Login prompts for credentials and logs into the configured application.
// With autoCreate the application user is provisioned when missing.
func (a *App) Login(ctx context.Context, autoCreate bool) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.authService.Login(ctx, models.LoginProps{
		Username:                  username,
		Password:                  string(password),
		ApplicationID:             a.config.ApplicationID,
		AutoCreateApplicationUser: autoCreate,
	})
	if err != nil {
		a.log.Warn(ctx, "login unsuccessful", "error", err)
		return err
	}

	a.log.Info(ctx, "login successful", "app_id", a.config.ApplicationID)
	fmt.Fprintln(a.out, "Logged in as", a.authService.ApplicationAlias())
	return nil
}

// Logout ends the session. Cached credentials are dropped only when the
// identity service accepts the request.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the GameStack identity from the access token and the cached
// application alias.
func (a *App) WhoAmI(ctx context.Context) error {
	identity, err := a.authService.GameStackAlias()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "GameStack: %s\nApplication %s: %s\n", identity, a.config.ApplicationID, a.authService.ApplicationAlias())
	return nil
}

