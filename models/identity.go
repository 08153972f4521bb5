package models

import "strconv"

// Identity is the authenticated caller resolved from a bearer token.
//
// UserID is either the decimal id of a persisted user or, when the service
// runs without a database, a synthesized "user_<username>_<unix>" string.
type Identity struct {
	UserID   string
	Username string
}

// PersistedID returns the numeric user id and true when UserID refers to a
// stored user.
func (i Identity) PersistedID() (int64, bool) {
	id, err := strconv.ParseInt(i.UserID, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
