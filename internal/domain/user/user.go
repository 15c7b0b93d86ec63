package user

import "time"

// UnknownName labels customers that could not be resolved from the store.
const UnknownName = "Unknown Customer"

// Summary carries the customer fields the statistics pipeline reads.
type Summary struct {
	ID          string
	FullName    string
	MemberSince time.Time
}

// Placeholder synthesizes a summary for an id that did not resolve.
func Placeholder(id string) Summary {
	return Summary{ID: id, FullName: UnknownName}
}
