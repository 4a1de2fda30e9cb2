package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/unievents/internal/client/client"
	"github.com/dmitrijs2005/unievents/internal/client/models"
	"github.com/dmitrijs2005/unievents/internal/client/services"
	"github.com/dmitrijs2005/unievents/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errRegisterRejected = errors.New("account could not be created")

// Login prompts for credentials and hands them to the session manager.
// A failed login is reported through the returned error; the session is
// left as it was.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	if err := services.ValidateLogin(email, password); err != nil {
		return err
	}

	return a.login(ctx, email, password)
}

func (a *App) login(ctx context.Context, email, password string) error {
	res := a.session.Login(ctx, email, password)
	if !res.Success {
		return errors.New(res.Message)
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", a.state.User.Name)
	return nil
}

// Register creates a student account and logs in with it.
func (a *App) Register(ctx context.Context) error {
	req := models.RegisterRequest{Role: models.RoleStudent}

	var err error
	if req.Name, err = getSimpleText(a.reader, "Enter full name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if req.Password, err = getPassword("Enter password", a.out); err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if err := services.ValidateRegistration(req, confirm); err != nil {
		return err
	}

	resp, err := a.authService.Register(ctx, req)
	if err != nil {
		return err
	}
	if !resp.Success {
		if resp.Error != "" {
			return errors.New(resp.Error)
		}
		return errRegisterRejected
	}

	fmt.Fprintln(a.out, "Account created.")
	return a.login(ctx, req.Email, req.Password)
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	return nil
}

// Profile fetches the current user from the server and prints it.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.authService.GetProfile(ctx)
	if err != nil {
		return a.apiError(ctx, err)
	}

	fmt.Fprintf(a.out, "Name:  %s\n", u.Name)
	fmt.Fprintf(a.out, "Email: %s\n", u.Email)
	fmt.Fprintf(a.out, "Role:  %s\n", u.Role.DisplayName())
	if exp, ok := session.TokenExpiry(a.state.Token); ok {
		fmt.Fprintf(a.out, "Token expires: %s\n", exp.Local().Format(time.DateTime))
	}
	return nil
}

// TestConnection asks the server whether it is up.
func (a *App) TestConnection(ctx context.Context) error {
	resp, err := a.authService.TestConnection(ctx)
	if err != nil {
		return err
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "server reported a problem"
		}
		return errors.New(msg)
	}
	fmt.Fprintln(a.out, "Server is reachable.")
	return nil
}

// apiError signs the user out when the server no longer accepts the token.
func (a *App) apiError(ctx context.Context, err error) error {
	var e *client.Error
	if errors.As(err, &e) && e.Status == http.StatusUnauthorized && a.isLoggedIn() {
		a.log.Info(ctx, "token rejected, signing out")
		a.session.Logout(ctx)
	}
	return err
}

func errorText(err error) string {
	if msg := client.Message(err); msg != "" {
		return msg
	}
	return err.Error()
}
