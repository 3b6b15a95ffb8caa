// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock is the single source of "now" for the application. Implementations
// return times already located in the process-wide calendar-day zone, so a
// date derived from Clock.Now is the authoritative calendar day everywhere.
// Core logic never reads the wall clock directly.
type Clock interface {
	Now() time.Time
}

// DateOf truncates a time to midnight in its own location, producing the
// calendar day used for streak and ledger comparisons.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day. Each time
// is read in its own location: date columns round-trip as UTC midnight while
// the clock runs in the configured zone, and converting one into the other's
// location can shift the civil day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of calendar days from a to b, negative when
// b is the earlier day. Both civil dates are rebuilt at UTC midnight so the
// division is exact across zones and DST transitions.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
