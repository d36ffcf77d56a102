package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/freshtrack/freshtrack/internal/api"
	"github.com/freshtrack/freshtrack/internal/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// reportAuthError translates the error taxonomy into user-facing text:
// a server rejection shows the server's message verbatim, a transport
// failure shows a generic retryable message.
func reportAuthError(err error) {
	var serverErr *api.ServerError
	switch {
	case errors.Is(err, api.ErrUnavailable):
		fmt.Println("Could not reach server. Please try again.")
	case errors.As(err, &serverErr) && serverErr.Message != "":
		fmt.Println(serverErr.Message)
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

// Login prompts for credentials, validates the form locally (phone
// number is not part of the login form) and authenticates. On success
// the session manager has already stored the credentials and refreshed
// the inventory.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	fields := map[string]string{
		validation.FieldUsername: username,
		validation.FieldPassword: password,
	}
	if errs := validation.Form(fields, true); errs != nil {
		printFieldErrors(errs)
		return nil
	}

	s, err := a.manager.Login(ctx, username, password)
	if err != nil {
		reportAuthError(err)
		return nil
	}
	fmt.Printf("Welcome, %s!\n", s.Username)
	return nil
}

// Register prompts for the signup form including the optional phone
// number. A successful registration does not log the user in; it asks
// them to switch to login.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number (optional)", os.Stdout)
	if err != nil {
		return err
	}

	fields := map[string]string{
		validation.FieldUsername:    username,
		validation.FieldPassword:    password,
		validation.FieldPhoneNumber: phone,
	}
	if errs := validation.Form(fields, false); errs != nil {
		printFieldErrors(errs)
		return nil
	}

	if err := a.manager.Register(ctx, username, password, phone); err != nil {
		reportAuthError(err)
		return nil
	}
	fmt.Println("Account created successfully, please login!")
	return nil
}

// Logout asks for confirmation and tears the session down locally.
// It needs no network, so it also works offline.
func (a *App) Logout(ctx context.Context) error {
	var c Confirm
	ok, err := GetConfirmation(a.reader, "Log out?", os.Stdout, &c)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	a.manager.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

func printFieldErrors(errs validation.FieldErrors) {
	for _, field := range []string{validation.FieldUsername, validation.FieldPassword, validation.FieldPhoneNumber} {
		if msg, ok := errs[field]; ok {
			fmt.Println(msg)
		}
	}
}
