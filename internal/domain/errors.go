package domain

import "errors"

// Shared error taxonomy. Services wrap these with context; handlers map
// them onto HTTP status codes with errors.Is.
var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidDecision = errors.New("invalid decision")
	ErrAnalytics       = errors.New("analytics query failed")
)
