package cli

import (
	"context"
	"os"
)

// diaryForm is shared by the create and detail screens.
type diaryForm struct {
	title string
	body  string
}

// fill prompts for title and body, keeping current values when the user just
// presses Enter.
func (f *diaryForm) fill(a *App) error {
	title, err := getTextDefault(a.reader, "Title", f.title, os.Stdout)
	if err != nil {
		return err
	}
	f.title = title

	body, err := getMultiline(a.reader, "Diary", os.Stdout)
	if err != nil {
		return err
	}
	if body != "" {
		f.body = body
	}
	return nil
}

func (f *diaryForm) validate() *Alert {
	if f.title == "" || f.body == "" {
		return &Alert{Title: "Error", Message: "Title and Diary fields cannot be empty."}
	}
	return nil
}

func (a *App) runCreate(ctx context.Context) route {
	form := &diaryForm{}
	printlnFn("-- new diary entry --")
	for {
		if a.writeDiary(ctx, form) {
			return route{to: screenHome}
		}

		cmd, err := getSimpleText(a.reader, "command (retry, back, exit)", os.Stdout)
		if err != nil {
			return route{to: screenExit}
		}
		switch cmd {
		case "back":
			return route{to: screenHome}
		case "exit", "quit":
			return route{to: screenExit}
		}
		// anything else retries with the form kept intact
	}
}

func (a *App) writeDiary(ctx context.Context, form *diaryForm) bool {
	if err := form.fill(a); err != nil {
		return false
	}

	state, alert := a.submit(ctx, submission{
		validate: form.validate,
		action: func(ctx context.Context) error {
			return a.api.CreateDiary(ctx, a.identity.UserID, form.title, form.body)
		},
		failure: "Error",
	})
	if state != stateSucceeded {
		a.showAlert(alert)
		return false
	}

	a.showAlert(Alert{Title: "Success", Message: "Diary created successfully!"})
	return true
}
