package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/dmitrijs2005/unievents/internal/client/client"
	"github.com/dmitrijs2005/unievents/internal/client/models"
	"github.com/dmitrijs2005/unievents/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/unievents/internal/common"
	"github.com/dmitrijs2005/unievents/internal/logging"
)

const (
	msgLoginFailed = "login error"
	msgSaveFailed  = "session could not be saved"
)

var errIncompleteLogin = errors.New("login response without token or user")

// Authenticator is the part of the auth service the Manager needs.
// GetProfile is only used as a probe of a restored token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetProfile(ctx context.Context) (*models.User, error)
}

type Option func(*Manager)

func WithLogger(l logging.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithObserver replaces the default logging observer.
func WithObserver(o Observer) Option {
	return func(m *Manager) {
		m.observer = o
	}
}

type listener struct {
	id int
	fn func(State)
}

// Manager holds the session state. The mutex only protects memory;
// overlapping Login calls are not serialised and the last one wins.
type Manager struct {
	store    credentials.Repository
	auth     Authenticator
	log      logging.Logger
	observer Observer

	mu        sync.Mutex
	state     State
	listeners []listener
	nextID    int
}

// NewManager returns a Manager in the loading state. Call Bootstrap next.
func NewManager(store credentials.Repository, auth Authenticator, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		auth:  auth,
		log:   logging.Nop(),
		state: State{Loading: true},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.observer == nil {
		m.observer = NewLogObserver(m.log)
	}
	return m
}

// State returns a snapshot of the current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

func (m *Manager) Status() Status {
	return m.State().Status()
}

// Subscribe registers fn to receive a snapshot after every state change.
// Listeners run synchronously in registration order on the goroutine that
// changed the state. The returned func removes the listener.
func (m *Manager) Subscribe(fn func(State)) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, listener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, l := range m.listeners {
				if l.id == id {
					m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (m *Manager) update(fn func(s *State)) {
	m.mu.Lock()
	fn(&m.state)
	snapshot := m.state
	listeners := append([]listener(nil), m.listeners...)
	m.mu.Unlock()

	for _, l := range listeners {
		l.fn(snapshot.clone())
	}
}

func (m *Manager) emit(ctx context.Context, e Event) {
	e.Status = m.Status()
	m.observer.OnTransition(ctx, e)
}

// Bootstrap restores a persisted session. With both keys present the
// session is restored optimistically and then checked with a profile
// request; any failure of that check logs the user out. Errors are never
// returned: every path ends unauthenticated or authenticated, not loading.
func (m *Manager) Bootstrap(ctx context.Context) {
	m.update(func(s *State) { s.Loading = true })
	m.emit(ctx, Event{Kind: EventBootstrapStart})

	reason := m.restore(ctx)

	m.update(func(s *State) { s.Loading = false })
	m.emit(ctx, Event{Kind: EventBootstrapResolved, Reason: reason})
}

func (m *Manager) restore(ctx context.Context) string {
	token, ok, err := m.store.Get(ctx, common.TokenKey)
	if err != nil {
		m.log.Error(ctx, "reading stored token", "error", err)
		return "store unavailable"
	}
	if !ok {
		return "no stored session"
	}

	raw, ok, err := m.store.Get(ctx, common.UserKey)
	if err != nil {
		m.log.Error(ctx, "reading stored user", "error", err)
		return "store unavailable"
	}
	if !ok {
		return "no stored session"
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		m.forceLogout(ctx, "stored user is corrupt", err)
		return "stored user is corrupt"
	}

	m.update(func(s *State) {
		s.User = &user
		s.Token = token
	})

	if _, err := m.auth.GetProfile(ctx); err != nil {
		m.forceLogout(ctx, "session rejected by server", err)
		return "session rejected by server"
	}
	return "session restored"
}

// Login authenticates and persists the session. It never returns an error:
// failures come back as a LoginResult with a message for the user, and
// leave the previous session untouched unless saving the new one failed.
func (m *Manager) Login(ctx context.Context, email, password string) LoginResult {
	m.emit(ctx, Event{Kind: EventLoginAttempt, Email: email})
	m.update(func(s *State) { s.Loading = true })

	res, err := m.login(ctx, email, password)

	m.update(func(s *State) { s.Loading = false })
	m.emit(ctx, Event{Kind: EventLoginResult, Email: email, Success: res.Success, Message: res.Message, Err: err})
	return res
}

func (m *Manager) login(ctx context.Context, email, password string) (LoginResult, error) {
	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		msg := client.Message(err)
		if msg == "" {
			msg = msgLoginFailed
		}
		return LoginResult{Message: msg}, err
	}
	if resp == nil || resp.User == nil || resp.Token == "" {
		return LoginResult{Message: msgLoginFailed}, errIncompleteLogin
	}

	user := *resp.User
	m.update(func(s *State) {
		s.User = &user
		s.Token = resp.Token
	})

	if err := m.persist(ctx, resp.Token, &user, resp.RawUser); err != nil {
		m.clear(ctx)
		return LoginResult{Message: msgSaveFailed}, err
	}
	return LoginResult{Success: true}, nil
}

// persist writes the token, then the user. The user is stored as the
// server sent it when raw is set, so fields this client does not model
// survive a restart. The store has no transactions, so the caller rolls
// back both keys on error.
func (m *Manager) persist(ctx context.Context, token string, user *models.User, raw json.RawMessage) error {
	if len(raw) == 0 {
		var err error
		if raw, err = json.Marshal(user); err != nil {
			return err
		}
	}
	if err := m.store.Set(ctx, common.TokenKey, token); err != nil {
		return err
	}
	return m.store.Set(ctx, common.UserKey, string(raw))
}

// Logout clears the session in memory and in the store. It makes no server
// call and is safe to repeat. Store failures are logged and skipped.
func (m *Manager) Logout(ctx context.Context) {
	m.clear(ctx)
	m.emit(ctx, Event{Kind: EventLogout})
}

func (m *Manager) forceLogout(ctx context.Context, reason string, err error) {
	m.emit(ctx, Event{Kind: EventForcedLogout, Reason: reason, Err: err})
	m.Logout(ctx)
}

func (m *Manager) clear(ctx context.Context) {
	m.update(func(s *State) {
		s.User = nil
		s.Token = ""
	})

	for _, key := range []string{common.TokenKey, common.UserKey} {
		if err := m.store.Remove(ctx, key); err != nil {
			m.log.Warn(ctx, "removing stored credential", "key", key, "error", err)
		}
	}
}
