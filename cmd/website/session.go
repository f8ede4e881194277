package main

import (
	"encoding/gob"
	"time"

	"github.com/adampresley/adamgokit/sessions"
	"github.com/kinetsulist/kinetsulist/pkg/models"
)

/*
newSessionService builds the cookie session that carries the visitor ID.
The cookie outlives the browser session so a saved list survives restarts.
*/
func newSessionService(cookieSecret string, maxAge time.Duration) sessions.Session[*models.Visitor] {
	gob.Register(&models.Visitor{})

	cookieStore := sessions.NewCookieStore(
		cookieSecret,
		sessions.WithMaxAge(maxAge),
		sessions.WithHttpOnly(true),
	)

	/*
	 * The codecs validate cookie timestamps against their own max age,
	 * which stays at 30 days unless set here too.
	 */
	cookieStore.MaxAge(int(maxAge.Seconds()))

	return sessions.NewSessionWrapper[*models.Visitor](cookieStore, "kinetsulist", "visitor")
}
