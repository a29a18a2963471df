package engine

import "github.com/google/uuid"

// NewSessionID generates a fresh session identifier for front-ends that
// have no natural session key of their own (e.g. a chat channel starting
// a brand-new conversation). USSD front-ends typically already have one
// from the telecom session and never need this.
func NewSessionID() string {
	return uuid.NewString()
}
