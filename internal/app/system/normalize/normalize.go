// Package normalize trims and canonicalizes request values before they
// reach a store.
package normalize

import "strings"

// Email trims whitespace and lower-cases an address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims a query-string value, preserving case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Category trims a category and collapses inner runs of whitespace so
// "Web  Development" and "Web Development" filter the same way.
func Category(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Flag reports whether a query flag is the literal "true". Anything else,
// including "TRUE" or "1", means the filter is not applied.
func Flag(s string) bool {
	return s == "true"
}
