package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jbsipayung/mydiary-cli/internal/models"
)

// runDetail fetches the entry, pre-fills the form with its current title and
// body, and lets the user submit an update. A failed fetch sends the flow
// straight back home.
func (a *App) runDetail(ctx context.Context, id int) route {
	var fetched models.Diary
	state, alert := a.submit(ctx, submission{
		action: func(ctx context.Context) error {
			d, err := a.api.GetDiary(ctx, id)
			if err != nil {
				return err
			}
			fetched = d
			return nil
		},
		failure: "Error",
	})
	if state != stateSucceeded {
		a.showAlert(alert)
		return route{to: screenHome}
	}

	form := &diaryForm{title: fetched.Title, body: fetched.Body}
	printlnFn(fmt.Sprintf("-- edit diary entry %d --", id))

	for {
		if a.updateDiary(ctx, id, form) {
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
	}
}

func (a *App) updateDiary(ctx context.Context, id int, form *diaryForm) bool {
	if err := form.fill(a); err != nil {
		return false
	}

	state, alert := a.submit(ctx, submission{
		validate: form.validate,
		action: func(ctx context.Context) error {
			return a.api.UpdateDiary(ctx, id, a.identity.UserID, form.title, form.body)
		},
		failure: "Error",
	})
	if state != stateSucceeded {
		a.showAlert(alert)
		return false
	}

	a.showAlert(Alert{Title: "Success", Message: "Diary updated successfully!"})
	return true
}
