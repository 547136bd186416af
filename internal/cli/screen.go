package cli

import (
	"context"
	"fmt"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// Alert is the single pending notification a screen may show. A screen never
// holds more than one: submit produces at most one per outcome, and showAlert
// displays and discards it immediately.
type Alert struct {
	Title   string
	Message string
}

func (a *App) showAlert(al Alert) {
	printlnFn(fmt.Sprintf("[%s] %s", al.Title, al.Message))
}

// submitState is the lifecycle of one form submission. A validation reject
// never leaves stateIdle; after the outcome alert is shown the screen is back
// to stateIdle for the next attempt.
type submitState int

const (
	stateIdle submitState = iota
	stateSubmitting
	stateSucceeded
	stateFailed
)

// submission is the shared screen pattern: a validation predicate guarding an
// asynchronous action. Screens differ only in the predicate, the action, and
// what they do on success.
type submission struct {
	validate func() *Alert
	action   func(context.Context) error
	failure  string // alert title used when the action fails
}

// submit runs one submission lifecycle. If validation rejects, the action is
// never dispatched and the validation alert comes back with stateIdle. The
// action runs on its own goroutine; its completion message is consumed right
// here, on the flow goroutine, before any state is touched — failures of the
// same action surface a fresh alert every time.
func (a *App) submit(ctx context.Context, s submission) (submitState, Alert) {
	if s.validate != nil {
		if al := s.validate(); al != nil {
			return stateIdle, *al
		}
	}

	results := make(chan error, 1)
	go func() { results <- s.action(ctx) }()

	var err error
	select {
	case err = <-results:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		return stateFailed, Alert{Title: s.failure, Message: err.Error()}
	}
	return stateSucceeded, Alert{}
}
