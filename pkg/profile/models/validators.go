package models

import (
	"regexp"
	"strings"
	"time"
)

// emailPattern requires local@domain.tld with a 2+ letter TLD, anchored at
// both ends. Looser ecosystem validators accept TLD-less addresses this
// module must reject, so the pattern is pinned here.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidUsername accepts any string that is non-empty after trimming
// leading and trailing whitespace.
func ValidUsername(username string) bool {
	return strings.TrimSpace(username) != ""
}

// ValidEmail accepts strings matching the anchored local@domain.tld pattern.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidLastLogin accepts explicit absence (nil) or any timestamp. The type
// system already rules out non-timestamp values, so every non-nil pointer
// is a well-formed last-login.
func ValidLastLogin(t *time.Time) bool {
	return true
}
