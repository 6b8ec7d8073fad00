package accounts

import "time"

// Account is a persisted username/password-hash pair. The username is
// trimmed, globally unique, and immutable after creation; no operation in
// this service mutates or deletes an account.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Sanitized returns a copy with the password hash stripped. Only this shape
// may cross the HTTP boundary.
func (a *Account) Sanitized() *Account {
	c := *a
	c.PasswordHash = ""
	return &c
}
