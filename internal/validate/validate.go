// Package validate holds the declarative validation rules shared by the
// services. A rule pairs a predicate with the exact message returned to the
// client; rules run top to bottom and the first failure wins.
package validate

import (
	"regexp"
	"time"

	"github.com/buurtmarkt/backend/internal/fault"
)

// Rule is one field check. OK reports whether the check passes.
type Rule struct {
	OK      func() bool
	Message string
}

// First evaluates rules in order and returns a ValidationError for the first
// failing one, or nil when all pass.
func First(rules ...Rule) error {
	for _, r := range rules {
		if !r.OK() {
			return fault.Validation(r.Message)
		}
	}
	return nil
}

// timePattern matches a time of day in 24-hour HH:mm format.
var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5]?[0-9])$`)

// IsHHMM reports whether s is a valid HH:mm time of day.
func IsHHMM(s string) bool {
	return timePattern.MatchString(s)
}

// Weekdays are the accepted dayOfWeek values.
var Weekdays = []string{"maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag", "zondag"}

// IsWeekday reports whether s is one of the seven weekday names.
func IsWeekday(s string) bool {
	for _, d := range Weekdays {
		if s == d {
			return true
		}
	}
	return false
}

// ParseDate parses an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// InFuture reports whether t lies after the current time.
func InFuture(t time.Time) bool {
	return t.After(time.Now())
}
