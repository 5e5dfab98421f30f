package session

import "time"

// User is the authenticated identity stored in the session.
type User struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"access_token"`
	SetAt       time.Time `json:"set_at"`
}

// IsZero reports whether no user has been set.
func (u User) IsZero() bool {
	return u.ID == "" && u.AccessToken == ""
}

// AnonUser is the identity assigned to a visitor before authentication.
type AnonUser struct {
	ID string `json:"id"`
}
