package session

import (
	"context"

	"github.com/dmitrijs2005/unievents/internal/logging"
)

type EventKind string

const (
	EventBootstrapStart    EventKind = "bootstrap-start"
	EventBootstrapResolved EventKind = "bootstrap-resolved"
	EventLoginAttempt      EventKind = "login-attempt"
	EventLoginResult       EventKind = "login-result"
	EventForcedLogout      EventKind = "forced-logout"
	EventLogout            EventKind = "logout"
)

// Event describes one session transition. Only the fields relevant to Kind
// are set.
type Event struct {
	Kind    EventKind
	Status  Status
	Email   string
	Success bool
	Message string
	Reason  string
	Err     error
}

// Observer is notified at every transition point of a Manager.
// OnTransition is called synchronously and must not call back into the
// Manager.
type Observer interface {
	OnTransition(ctx context.Context, e Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ctx context.Context, e Event)

func (f ObserverFunc) OnTransition(ctx context.Context, e Event) { f(ctx, e) }

type logObserver struct {
	log logging.Logger
}

// NewLogObserver returns the default Observer, which writes every event to
// log. Tokens and passwords never reach it.
func NewLogObserver(log logging.Logger) Observer {
	return &logObserver{log: log}
}

func (o *logObserver) OnTransition(ctx context.Context, e Event) {
	args := []any{"event", string(e.Kind), "status", e.Status.String()}
	if e.Email != "" {
		args = append(args, "email", e.Email)
	}
	if e.Reason != "" {
		args = append(args, "reason", e.Reason)
	}

	switch e.Kind {
	case EventLoginResult:
		args = append(args, "success", e.Success)
		if !e.Success {
			args = append(args, "message", e.Message)
			if e.Err != nil {
				args = append(args, "error", e.Err)
			}
			o.log.Warn(ctx, "login failed", args...)
			return
		}
		o.log.Info(ctx, "login succeeded", args...)
	case EventForcedLogout:
		if e.Err != nil {
			args = append(args, "error", e.Err)
		}
		o.log.Warn(ctx, "session discarded", args...)
	case EventBootstrapResolved:
		o.log.Info(ctx, "session bootstrap finished", args...)
	case EventLogout:
		o.log.Info(ctx, "logged out", args...)
	default:
		o.log.Debug(ctx, "session transition", args...)
	}
}
