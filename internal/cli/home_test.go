package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbsipayung/mydiary-cli/internal/api"
	"github.com/jbsipayung/mydiary-cli/internal/models"
	"github.com/jbsipayung/mydiary-cli/internal/session"
)

func entry(id, userID int, title string) models.Diary {
	ts := models.Timestamp{Time: time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)}
	return models.Diary{ID: id, UserID: userID, Title: title, Body: "text", CreatedAt: ts, UpdatedAt: ts}
}

func TestRefreshDiaries_ReplacesListOnSuccess(t *testing.T) {
	captureOutput(t)

	f := &fakeAPI{listEntries: []models.Diary{entry(1, 7, "first"), entry(2, 7, "second")}}
	a := newTestApp(f, &fakeStore{})
	a.identity = session.Identity{UserID: 7, Name: "Alice"}
	a.diaries = []models.Diary{entry(9, 7, "stale")}

	a.refreshDiaries(context.Background())

	require.Len(t, a.diaries, 2)
	assert.Equal(t, 1, a.diaries[0].ID)
	assert.Equal(t, []string{"list 7"}, f.calls)
}

func TestRefreshDiaries_FailureKeepsPreviousList(t *testing.T) {
	out := captureOutput(t)

	f := &fakeAPI{listErr: fmt.Errorf("%w: User Diaries Not Found", api.ErrRequestFailed)}
	a := newTestApp(f, &fakeStore{})
	a.identity = session.Identity{UserID: 7, Name: "Alice"}
	prev := []models.Diary{entry(1, 7, "kept")}
	a.diaries = prev

	a.refreshDiaries(context.Background())

	assert.Equal(t, prev, a.diaries)
	require.Len(t, alertLines(*out), 1)
	assert.Contains(t, alertLines(*out)[0], "User Diaries Not Found")
}

func TestDeleteDiary_PrunesWithoutRefetch(t *testing.T) {
	out := captureOutput(t)

	f := &fakeAPI{}
	a := newTestApp(f, &fakeStore{})
	a.diaries = []models.Diary{entry(1, 7, "keep"), entry(5, 7, "drop"), entry(8, 7, "keep too")}

	a.deleteDiary(context.Background(), 5)

	require.Len(t, a.diaries, 2)
	assert.Equal(t, 1, a.diaries[0].ID)
	assert.Equal(t, 8, a.diaries[1].ID)
	// only the delete request, no follow-up list
	assert.Equal(t, []string{"delete 5"}, f.calls)
	require.Len(t, alertLines(*out), 1)
	assert.Contains(t, alertLines(*out)[0], "Diary entry deleted successfully")
}

func TestDeleteDiary_FailureLeavesListAlone(t *testing.T) {
	out := captureOutput(t)

	f := &fakeAPI{deleteErr: fmt.Errorf("%w: Diary Not Found", api.ErrRequestFailed)}
	a := newTestApp(f, &fakeStore{})
	a.diaries = []models.Diary{entry(5, 7, "still here")}

	a.deleteDiary(context.Background(), 5)

	require.Len(t, a.diaries, 1)
	require.Len(t, alertLines(*out), 1)
	assert.Contains(t, alertLines(*out)[0], "Diary Not Found")
}

func TestLoadIdentity_BadTokenDegradesToZero(t *testing.T) {
	a := newTestApp(&fakeAPI{}, &fakeStore{token: "not-a-jwt"})

	a.loadIdentity(context.Background())

	assert.Equal(t, session.Identity{}, a.identity)
}

func TestRenderHome(t *testing.T) {
	a := newTestApp(&fakeAPI{}, &fakeStore{})
	a.identity = session.Identity{UserID: 7, Name: "Alice"}

	var b strings.Builder
	a.renderHome(&b)
	assert.Contains(t, b.String(), "Welcome, Alice")
	assert.Contains(t, b.String(), "No diary entries yet.")

	a.diaries = []models.Diary{entry(3, 7, "Trip notes")}
	b.Reset()
	a.renderHome(&b)
	assert.Contains(t, b.String(), "[3] Trip notes")
	assert.Contains(t, b.String(), "2024-06-12 10:00:00")
}

func TestRunHome_EditRoutesToDetailWithID(t *testing.T) {
	captureOutput(t)
	scriptInputs(t, []string{"edit 42"}, nil)

	a := newTestApp(&fakeAPI{}, &fakeStore{})
	next := a.runHome(context.Background())

	assert.Equal(t, screenDetail, next.to)
	assert.Equal(t, 42, next.diaryID)
}

func TestRunHome_BadIDShowsUsage(t *testing.T) {
	out := captureOutput(t)
	scriptInputs(t, []string{"edit", "delete abc", "exit"}, nil)

	f := &fakeAPI{}
	a := newTestApp(f, &fakeStore{})
	next := a.runHome(context.Background())

	assert.Equal(t, screenExit, next.to)
	// the initial list fetch is the only API traffic
	assert.Equal(t, []string{"list 0"}, f.calls)

	var usages int
	for _, l := range *out {
		if strings.HasPrefix(l, "Usage:") {
			usages++
		}
	}
	assert.Equal(t, 2, usages)
}
