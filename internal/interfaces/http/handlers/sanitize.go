package handlers

import "github.com/microcosm-cc/bluemonday"

// strictPolicy strips all markup from client-supplied free text. Titles,
// descriptions and comments are stored as plain text; anything resembling
// HTML is removed before it reaches a use case.
var strictPolicy = bluemonday.StrictPolicy()

func sanitize(s string) string {
	return strictPolicy.Sanitize(s)
}

func sanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := strictPolicy.Sanitize(*s)
	return &clean
}
