package models

import (
	"fmt"
	"sync/atomic"
	"time"

	"profilekit/pkg/field"
)

// DefaultLastLogin is the sentinel returned by LastLoginOrDefault for
// profiles that have never logged in.
var DefaultLastLogin = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// lastLoginLayout renders timestamps in the diagnostic string.
const lastLoginLayout = "2006-01-02 15:04:05"

// nextID hands out identity tokens. Monotonic and never reused, so a stale
// registry entry can never alias a later profile even after collection.
var nextID atomic.Uint64

// Profile is a user-profile value object. Each attribute is a validated
// field: every write runs its predicate before the value is stored, so a
// field is at all times either absent or holds a value that passed
// validation at assignment time. Rejected writes leave prior state
// untouched.
//
// A Profile is not safe for concurrent mutation; like any value object it
// belongs to one goroutine at a time.
type Profile struct {
	id        uint64
	username  field.Value[string]
	email     field.Value[string]
	lastLogin field.Value[time.Time]
}

// New constructs a profile with all fields absent. No validation runs until
// a field is explicitly assigned.
func New() *Profile {
	return &Profile{
		id:       nextID.Add(1),
		username: field.New("username", ValidUsername),
		email:    field.New("email", ValidEmail),
		lastLogin: field.New("last_login", func(t time.Time) bool {
			return ValidLastLogin(&t)
		}),
	}
}

// ID returns the profile's identity token: stable for the profile's
// lifetime, unique across the process, usable as a map key.
func (p *Profile) ID() uint64 { return p.id }

// Username returns the stored username and whether it has been set.
func (p *Profile) Username() (string, bool) { return p.username.Get() }

// SetUsername validates and stores the username.
func (p *Profile) SetUsername(username string) error {
	return p.username.Set(username)
}

// Email returns the stored email and whether it has been set.
func (p *Profile) Email() (string, bool) { return p.email.Get() }

// SetEmail validates and stores the email address.
func (p *Profile) SetEmail(email string) error {
	return p.email.Set(email)
}

// LastLogin returns the stored last-login time and whether it has been set.
func (p *Profile) LastLogin() (time.Time, bool) { return p.lastLogin.Get() }

// SetLastLogin stores the last-login time. A nil pointer is a valid write
// that clears the field to explicit absence.
func (p *Profile) SetLastLogin(t *time.Time) error {
	if t == nil {
		p.lastLogin.Clear()
		return nil
	}
	return p.lastLogin.Set(*t)
}

// UpdateLastLogin records a login: the given time as-is when non-nil,
// otherwise the current wall-clock time. Callers passing nil get "now",
// not "absent".
func (p *Profile) UpdateLastLogin(t *time.Time) error {
	if t == nil {
		now := time.Now()
		t = &now
	}
	return p.lastLogin.Set(*t)
}

// LastLoginOrDefault returns the stored last-login, or DefaultLastLogin when
// the field is absent. Reading never mutates stored state.
func (p *Profile) LastLoginOrDefault() time.Time {
	if t, ok := p.lastLogin.Get(); ok {
		return t
	}
	return DefaultLastLogin
}

// String renders the diagnostic representation. Absent fields render as
// None.
func (p *Profile) String() string {
	username := "None"
	if u, ok := p.username.Get(); ok {
		username = u
	}
	email := "None"
	if e, ok := p.email.Get(); ok {
		email = e
	}
	lastLogin := "None"
	if t, ok := p.lastLogin.Get(); ok {
		lastLogin = t.Format(lastLoginLayout)
	}
	return fmt.Sprintf("UserProfile(username=%s, email=%s, last_login=%s)", username, email, lastLogin)
}
