package cli

import (
	"context"
	"os"
)

type loginForm struct {
	email    string
	password string
}

func (a *App) runLogin(ctx context.Context) route {
	form := &loginForm{}
	for {
		cmd, err := getSimpleText(a.reader, "sign in — command (login, register, exit)", os.Stdout)
		if err != nil {
			return route{to: screenExit}
		}

		switch cmd {
		case "login":
			if next, ok := a.signIn(ctx, form); ok {
				return next
			}
		case "register":
			return route{to: screenRegister}
		case "help", "":
			printlnFn("Available commands: login, register, exit")
		case "exit", "quit":
			return route{to: screenExit}
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// signIn runs one submission of the login form. ok is true when the flow
// should leave for Home; on any failure the form keeps its values and the
// user stays here.
func (a *App) signIn(ctx context.Context, form *loginForm) (route, bool) {
	email, err := getTextDefault(a.reader, "Email", form.email, os.Stdout)
	if err != nil {
		return route{}, false
	}
	form.email = email

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return route{}, false
	}
	form.password = password

	state, alert := a.submit(ctx, submission{
		validate: func() *Alert {
			if form.email == "" || form.password == "" {
				return &Alert{Title: "Login Failed", Message: "Email or password is required."}
			}
			return nil
		},
		action: func(ctx context.Context) error {
			token, err := a.api.Login(ctx, form.email, form.password)
			if err != nil {
				return err
			}
			return a.store.Save(ctx, token)
		},
		failure: "Login Failed",
	})
	if state != stateSucceeded {
		a.showAlert(alert)
		return route{}, false
	}

	a.log.Info(ctx, "login successful", "email", form.email)
	return route{to: screenHome}, true
}
