package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The transition table is the contract the tasks and stores rely on; an
// undocumented edge slipping in would let duplicate gateway deliveries corrupt
// terminal states.
func TestStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to Status
	}{
		{StatusPosted, StatusRequested},
		{StatusPosted, StatusErrored},
		{StatusRequested, StatusGranted},
		{StatusRequested, StatusDenied},
		{StatusRequested, StatusErrored},
		{StatusRequested, StatusExpired},
		{StatusGranted, StatusExpired},
		{StatusGranted, StatusRevoked},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s must be allowed", tc.from, tc.to)
	}

	denied := []struct {
		from, to Status
	}{
		{StatusDenied, StatusGranted},
		{StatusErrored, StatusRequested},
		{StatusExpired, StatusGranted},
		{StatusRevoked, StatusExpired},
		{StatusExpired, StatusExpired},
		{StatusPosted, StatusGranted},
		{StatusGranted, StatusDenied},
	}
	for _, tc := range denied {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s must be rejected", tc.from, tc.to)
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusDenied, StatusExpired, StatusRevoked, StatusErrored} {
		assert.True(t, s.IsTerminal(), "%s is terminal", s)
	}
	for _, s := range []Status{StatusPosted, StatusRequested, StatusGranted} {
		assert.False(t, s.IsTerminal(), "%s is not terminal", s)
	}
}
