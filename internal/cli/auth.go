package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a student id and password and authenticates. When the
// backend is unreachable, the service falls back to the bundled demo
// accounts on an exact match; any other failure is printed as-is.
func (a *App) Login(ctx context.Context) error {
	studentID, err := getSimpleText(a.reader, "Enter student id", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, studentID, password); err != nil {
		fmt.Println("Login failed:", err.Error())
		return err
	}

	user := a.auth.CurrentUser()
	fmt.Printf("Welcome, %s!\n", user.DisplayName)
	return nil
}

// Logout signs out and clears the saved session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

// Register creates a demo account valid until the process exits.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	studentID, err := getSimpleText(a.reader, "Enter student id", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.accounts.RegisterDemo(ctx, name, studentID, password); err != nil {
		fmt.Println("Registration failed:", err.Error())
		return err
	}

	fmt.Println("Success! You can now log in with the new account.")
	return nil
}
