package models

// Status is the lifecycle state of a consent request or artefact.
type Status string

const (
	StatusPosted    Status = "POSTED"
	StatusRequested Status = "REQUESTED"
	StatusGranted   Status = "GRANTED"
	StatusDenied    Status = "DENIED"
	StatusExpired   Status = "EXPIRED"
	StatusRevoked   Status = "REVOKED"
	StatusErrored   Status = "ERRORED"
)

// transitions holds the documented lifecycle edges. A granted consent can
// later expire or be revoked; denied and errored are terminal.
var transitions = map[Status][]Status{
	StatusPosted:    {StatusRequested, StatusErrored},
	StatusRequested: {StatusGranted, StatusDenied, StatusErrored, StatusExpired},
	StatusGranted:   {StatusExpired, StatusRevoked},
}

// IsValid reports whether s is a known lifecycle state.
func (s Status) IsValid() bool {
	switch s {
	case StatusPosted, StatusRequested, StatusGranted, StatusDenied,
		StatusExpired, StatusRevoked, StatusErrored:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.IsValid()
}

// CanTransition reports whether the edge s → to is documented.
func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
