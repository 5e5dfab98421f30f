// Package clientsession keeps a mutable key/value session payload inside an
// encrypted cookie.
//
// The Middleware opens the cookie on every request and attaches the decoded
// *Session to the request context under the cookie name. Handlers mutate the
// session in place. Right before the response headers are written, the
// payload is sealed again and sent back, but only when it changed, when the
// session was renewed or when it was reset.
//
// # Lifetime
//
// Every session carries its creation time and a duration. A cookie older
// than its duration is ignored and a fresh session is started. When a
// request arrives with less than ActiveDuration left, the duration is
// extended by ActiveDuration, so active visitors are never logged out.
//
// # Usage
//
//	mw, err := clientsession.New(clientsession.Config{
//	    CookieName:     "session",
//	    Secret:         os.Getenv("SESSION_SECRET"),
//	    Duration:       24 * time.Hour,
//	    ActiveDuration: time.Hour,
//	    HTTPOnly:       true,
//	})
//	if err != nil { log.Fatal(err) }
//
//	http.Handle("/", mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    sess, _ := clientsession.FromRequest(r, "session")
//	    sess.Set("visits", 1)
//	})))
package clientsession
