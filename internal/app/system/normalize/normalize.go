// Package normalize centralizes the string folding applied to fields
// that are used as lookup keys, so stores and guards agree on what a
// stored value looks like.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are the unique
// key on the users collection and the lookup key for role guards.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace from a display name.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
