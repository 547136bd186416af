package cli

import (
	"context"
	"os"
)

type registerForm struct {
	name     string
	email    string
	password string
	confirm  string
}

func (a *App) runRegister(ctx context.Context) route {
	form := &registerForm{}
	for {
		cmd, err := getSimpleText(a.reader, "create account — command (register, login, exit)", os.Stdout)
		if err != nil {
			return route{to: screenExit}
		}

		switch cmd {
		case "register":
			if a.signUp(ctx, form) {
				return route{to: screenLogin}
			}
		case "login", "back":
			return route{to: screenLogin}
		case "help", "":
			printlnFn("Available commands: register, login, exit")
		case "exit", "quit":
			return route{to: screenExit}
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// signUp runs one submission of the registration form and reports whether it
// succeeded (the flow then returns to the login screen).
func (a *App) signUp(ctx context.Context, form *registerForm) bool {
	var err error
	if form.name, err = getTextDefault(a.reader, "Name", form.name, os.Stdout); err != nil {
		return false
	}
	if form.email, err = getTextDefault(a.reader, "Email", form.email, os.Stdout); err != nil {
		return false
	}
	if form.password, err = getPassword("Password", os.Stdout); err != nil {
		return false
	}
	if form.confirm, err = getPassword("Confirm password", os.Stdout); err != nil {
		return false
	}

	state, alert := a.submit(ctx, submission{
		validate: func() *Alert {
			if form.name == "" || form.email == "" || form.password == "" || form.confirm == "" {
				return &Alert{Title: "Registration Failed", Message: "All fields are required."}
			}
			if form.password != form.confirm {
				return &Alert{Title: "Registration Failed", Message: "Passwords do not match."}
			}
			return nil
		},
		action: func(ctx context.Context) error {
			return a.api.Register(ctx, form.name, form.email, form.password)
		},
		failure: "Registration Failed",
	})
	if state != stateSucceeded {
		a.showAlert(alert)
		return false
	}

	a.showAlert(Alert{Title: "Registration", Message: "Registration successful! Please sign in."})
	return true
}
