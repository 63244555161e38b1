package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vineauth/internal/client/client"
	"github.com/dmitrijs2005/vineauth/internal/client/models"
	"github.com/dmitrijs2005/vineauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotLoggedIn = errors.New("you are not logged in")

// optional registration prompts, in the order they are asked
var registrationExtras = []struct {
	prompt string
	set    func(r *models.Registration, v string)
}{
	{"Phone number (optional)", func(r *models.Registration, v string) { r.PhoneNumber = v }},
	{"Address (optional)", func(r *models.Registration, v string) { r.Address = v }},
	{"Country (optional)", func(r *models.Registration, v string) { r.Country = v }},
	{"Full name (optional)", func(r *models.Registration, v string) { r.FullName = v }},
	{"BVN (optional)", func(r *models.Registration, v string) { r.NationalIDNumber = v }},
	{"Gender (optional)", func(r *models.Registration, v string) { r.Gender = v }},
	{"Date of birth (optional)", func(r *models.Registration, v string) { r.DateOfBirth = v }},
}

// Register prompts for the account fields and creates the account. A
// successful registration also logs the user in.
func (a *App) Register(ctx context.Context) error {
	var r models.Registration
	var err error

	if r.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if r.UserName, err = getSimpleText(a.reader, "Enter user name", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	r.Password = string(password)

	for _, extra := range registrationExtras {
		v, err := getSimpleText(a.reader, extra.prompt, a.out)
		if err != nil {
			return err
		}
		extra.set(&r, v)
	}

	if err := a.authService.Register(ctx, r); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and starts a session.
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

	if err := a.authService.Login(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Profile prints the profile of the logged-in user.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	p, err := a.authService.Profile(ctx)
	if err != nil {
		return err
	}

	rows := [][2]string{
		{"User name", p.UserName},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Address", p.Address},
		{"Country", p.Country},
		{"Full name", p.FullName},
		{"BVN", p.NationalIDNumber},
		{"Gender", p.Gender},
		{"Date of birth", p.DateOfBirth},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(a.out, "%-14s %s\n", row[0]+":", row[1])
	}
	return nil
}

// Forgot asks the server to mail a temporary password for an email.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	if err := a.authService.ForgotPassword(ctx, email); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "If the account exists, a temporary password is on its way.")
	return nil
}

// Logout drops the in-memory session.
func (a *App) Logout(context.Context) error {
	a.authService.Logout()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// describeError turns service errors into one readable line.
func describeError(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		if len(apiErr.Fields) > 0 {
			msgs := make([]string, 0, len(apiErr.Fields))
			for _, f := range apiErr.Fields {
				msgs = append(msgs, f.Msg)
			}
			return strings.Join(msgs, "; ")
		}
		return apiErr.Message
	case errors.Is(err, client.ErrUnauthorized):
		return "session expired, please log in again"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	default:
		return err.Error()
	}
}
