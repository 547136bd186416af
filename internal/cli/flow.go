package cli

import (
	"context"
	"time"
)

type screen int

const (
	screenSplash screen = iota
	screenLogin
	screenRegister
	screenHome
	screenCreate
	screenDetail
	screenExit
)

// route is a navigation target; diaryID is only set when routing to the
// detail screen.
type route struct {
	to      screen
	diaryID int
}

// Run drives the navigation flow until the user exits or the context is
// cancelled: Splash -> Login <-> Register, Login -> Home, Home -> Create ->
// Home, Home -> Detail(id) -> Home. There is no logout; a new login simply
// overwrites the stored token.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	cur := route{to: screenSplash}
	for cur.to != screenExit {
		if ctx.Err() != nil {
			return
		}
		switch cur.to {
		case screenSplash:
			cur = a.runSplash(ctx)
		case screenLogin:
			cur = a.runLogin(ctx)
		case screenRegister:
			cur = a.runRegister(ctx)
		case screenHome:
			cur = a.runHome(ctx)
		case screenCreate:
			cur = a.runCreate(ctx)
		case screenDetail:
			cur = a.runDetail(ctx, cur.diaryID)
		}
	}
	printlnFn("Bye!")
}

func (a *App) runSplash(ctx context.Context) route {
	printlnFn("mydiary — your personal diary (type 'help' on any screen)")

	timer := time.NewTimer(a.config.SplashDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return route{to: screenExit}
	}
	return route{to: screenLogin}
}
