// Package session layers typed identity accessors over the cookie-backed
// payload managed by package clientsession.
//
// A Manager holds the immutable configuration (secret, cookie name,
// lifetimes, environment, access-token validator) and builds the
// clientsession middleware. For every request it wraps the attached payload
// in a View, which exposes the authenticated user, the anonymous visitor id,
// the originating host, feature flags and arbitrary custom fields.
//
// # Identity model
//
// The first time a visitor is seen without an authenticated user, the View
// assigns an anonymous id ("lo_" followed by 32 hex characters). SetUser
// stores an authenticated identity next to it; the anonymous id is kept so
// that pre-login activity can be linked to the account.
//
// Reserved payload keys start with "_sa" and never collide with custom
// fields chosen by the application.
//
// # Usage
//
//	manager, err := session.New(session.Config{
//	    Secret:      os.Getenv("SESSION_SECRET"),
//	    Environment: environment.Production,
//	    CookieDomain: ".example.com",
//	}, session.WithAccessTokenValidator(validator))
//	if err != nil { log.Fatal(err) }
//
//	r := chi.NewRouter()
//	r.Use(manager.Middleware)
//	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
//	    view, _ := manager.GetSession(r)
//	    if _, err := view.SetUser(session.User{ID: id, AccessToken: token}); err != nil {
//	        http.Error(w, err.Error(), http.StatusBadRequest)
//	    }
//	})
//
// # Error Handling
//
// Absent sessions are reported as (zero, false) results. Operations that can
// fail return sentinel errors (ErrMissingUserID, ErrNoAccessToken, ...)
// suitable for errors.Is.
package session
