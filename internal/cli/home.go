package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jbsipayung/mydiary-cli/internal/models"
)

// runHome shows the diary feed. Entering the screen decodes the stored token
// and replaces the in-memory list wholesale with a fresh fetch; delete prunes
// the list locally without re-fetching.
func (a *App) runHome(ctx context.Context) route {
	a.loadIdentity(ctx)
	a.refreshDiaries(ctx)
	a.renderHome(os.Stdout)

	for {
		line, err := getSimpleText(a.reader, "home — command (list, create, edit <id>, delete <id>, exit)", os.Stdout)
		if err != nil {
			return route{to: screenExit}
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "l", "list":
			a.refreshDiaries(ctx)
			a.renderHome(os.Stdout)
		case "create":
			return route{to: screenCreate}
		case "edit":
			id, ok := parseID(args, "edit")
			if !ok {
				continue
			}
			return route{to: screenDetail, diaryID: id}
		case "delete":
			id, ok := parseID(args, "delete")
			if !ok {
				continue
			}
			a.deleteDiary(ctx, id)
			a.renderHome(os.Stdout)
		case "help":
			printlnFn("Available commands: (l)ist, create, edit <id>, delete <id>, exit")
		case "exit", "quit":
			return route{to: screenExit}
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func parseID(args []string, cmd string) (int, bool) {
	if len(args) == 0 {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return 0, false
	}
	return id, true
}

// refreshDiaries replaces the whole list on success. On failure the previous
// list is kept as-is.
func (a *App) refreshDiaries(ctx context.Context) {
	var entries []models.Diary
	state, alert := a.submit(ctx, submission{
		action: func(ctx context.Context) error {
			got, err := a.api.ListDiaries(ctx, a.identity.UserID)
			if err != nil {
				return err
			}
			entries = got
			return nil
		},
		failure: "Error",
	})
	if state != stateSucceeded {
		a.showAlert(alert)
		return
	}
	a.diaries = entries
}

// deleteDiary issues the delete and, on success, prunes the entry from the
// in-memory list by id. No re-fetch.
func (a *App) deleteDiary(ctx context.Context, id int) {
	state, alert := a.submit(ctx, submission{
		action: func(ctx context.Context) error {
			return a.api.DeleteDiary(ctx, id)
		},
		failure: "Error",
	})
	if state != stateSucceeded {
		a.showAlert(alert)
		return
	}

	kept := a.diaries[:0]
	for _, d := range a.diaries {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	a.diaries = kept
	a.showAlert(Alert{Title: "Success", Message: "Diary entry deleted successfully"})
}

func (a *App) renderHome(w io.Writer) {
	fmt.Fprintf(w, "Welcome, %s\n", a.identity.Name)
	if len(a.diaries) == 0 {
		fmt.Fprintln(w, "No diary entries yet.")
		return
	}
	for _, d := range a.diaries {
		fmt.Fprintf(w, "  [%d] %s (updated %s)\n", d.ID, d.Title, d.UpdatedAt.Format(models.TimestampLayout))
	}
}
