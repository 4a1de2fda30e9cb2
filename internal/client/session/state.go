package session

import "github.com/dmitrijs2005/unievents/internal/client/models"

// State is what the UI routes on: Loading first, then the presence of User.
// User and Token are always set together and cleared together.
type State struct {
	User    *models.User
	Token   string
	Loading bool
}

// Authenticated reports whether a user is logged in.
func (s State) Authenticated() bool {
	return s.User != nil
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

type Status int

const (
	// Bootstrapping is reported whenever Loading is set, login included.
	Bootstrapping Status = iota
	Authenticated
	Unauthenticated
)

func (s Status) String() string {
	switch s {
	case Bootstrapping:
		return "bootstrapping"
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

func (s State) Status() Status {
	switch {
	case s.Loading:
		return Bootstrapping
	case s.Authenticated():
		return Authenticated
	default:
		return Unauthenticated
	}
}

// LoginResult is returned by Login. Message is set on failure.
type LoginResult struct {
	Success bool
	Message string
}
