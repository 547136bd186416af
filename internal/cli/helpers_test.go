package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/jbsipayung/mydiary-cli/internal/api"
	"github.com/jbsipayung/mydiary-cli/internal/config"
	"github.com/jbsipayung/mydiary-cli/internal/logging"
	"github.com/jbsipayung/mydiary-cli/internal/models"
	"github.com/jbsipayung/mydiary-cli/internal/session"
)

// fakeAPI records every call and answers from canned fields.
type fakeAPI struct {
	calls []string

	loginToken  string
	loginErr    error
	registerErr error
	listEntries []models.Diary
	listErr     error
	createErr   error
	getEntry    models.Diary
	getErr      error
	updateErr   error
	deleteErr   error
}

var _ api.Client = (*fakeAPI)(nil)

func (f *fakeAPI) Login(_ context.Context, email, _ string) (string, error) {
	f.calls = append(f.calls, "login "+email)
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeAPI) Register(_ context.Context, _, email, _ string) error {
	f.calls = append(f.calls, "register "+email)
	return f.registerErr
}

func (f *fakeAPI) ListDiaries(_ context.Context, userID int) ([]models.Diary, error) {
	f.calls = append(f.calls, fmt.Sprintf("list %d", userID))
	return f.listEntries, f.listErr
}

func (f *fakeAPI) CreateDiary(_ context.Context, userID int, title, _ string) error {
	f.calls = append(f.calls, fmt.Sprintf("create %d %s", userID, title))
	return f.createErr
}

func (f *fakeAPI) GetDiary(_ context.Context, id int) (models.Diary, error) {
	f.calls = append(f.calls, fmt.Sprintf("get %d", id))
	return f.getEntry, f.getErr
}

func (f *fakeAPI) UpdateDiary(_ context.Context, id, userID int, title, _ string) error {
	f.calls = append(f.calls, fmt.Sprintf("update %d %d %s", id, userID, title))
	return f.updateErr
}

func (f *fakeAPI) DeleteDiary(_ context.Context, id int) error {
	f.calls = append(f.calls, fmt.Sprintf("delete %d", id))
	return f.deleteErr
}

// fakeStore is an in-memory session.Store.
type fakeStore struct {
	token   string
	saveErr error
	loadErr error
}

var _ session.Store = (*fakeStore)(nil)

func (f *fakeStore) Save(_ context.Context, token string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.token = token
	return nil
}

func (f *fakeStore) Load(_ context.Context) (string, error) {
	return f.token, f.loadErr
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestApp(f *fakeAPI, s *fakeStore) *App {
	return &App{
		config: &config.Config{},
		api:    f,
		store:  s,
		log:    testLogger(),
		reader: bufio.NewReader(strings.NewReader("")),
	}
}

// captureOutput swallows user-facing output and returns the collected lines.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprint(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

// inputScript replaces the interactive input helpers with canned answers.
// Text prompts (simple, default, multiline) consume from texts in order; an
// empty answer to a default prompt keeps the current value, like the real
// helper. When the script runs out, every prompt answers "exit" so flows
// terminate.
type inputScript struct {
	texts     []string
	passwords []string
}

func (s *inputScript) nextText() string {
	if len(s.texts) == 0 {
		return "exit"
	}
	v := s.texts[0]
	s.texts = s.texts[1:]
	return v
}

func (s *inputScript) nextPassword() string {
	if len(s.passwords) == 0 {
		return ""
	}
	v := s.passwords[0]
	s.passwords = s.passwords[1:]
	return v
}

func scriptInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	s := &inputScript{texts: texts, passwords: passwords}

	origST, origTD, origPW, origML := getSimpleText, getTextDefault, getPassword, getMultiline
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return s.nextText(), nil
	}
	getTextDefault = func(_ *bufio.Reader, _ string, current string, _ io.Writer) (string, error) {
		if v := s.nextText(); v != "" {
			return v, nil
		}
		return current, nil
	}
	getPassword = func(_ string, _ io.Writer) (string, error) {
		return s.nextPassword(), nil
	}
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return s.nextText(), nil
	}
	t.Cleanup(func() {
		getSimpleText, getTextDefault, getPassword, getMultiline = origST, origTD, origPW, origML
	})
}

func alertLines(lines []string) []string {
	var alerts []string
	for _, l := range lines {
		if strings.HasPrefix(l, "[") {
			alerts = append(alerts, l)
		}
	}
	return alerts
}
