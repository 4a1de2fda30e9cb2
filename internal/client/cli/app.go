package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/unievents/internal/client/client"
	"github.com/dmitrijs2005/unievents/internal/client/config"
	"github.com/dmitrijs2005/unievents/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/unievents/internal/client/services"
	"github.com/dmitrijs2005/unievents/internal/client/session"
	"github.com/dmitrijs2005/unievents/internal/logging"
)

type App struct {
	config        *config.Config
	log           logging.Logger
	session       *session.Manager
	authService   services.AuthService
	eventService  services.EventService
	reader        *bufio.Reader
	out           io.Writer
	now           func() time.Time
	closeStore    func() error
	state         session.State
	unsubscribeFn func()
}

// NewApp opens the credential store configured in c and builds the services
// and session manager on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, closeStore, err := credentials.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("opening credential store: %w", err)
	}

	apiClient, err := client.New(c.APIBaseURL, store,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
	)
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	as := services.NewAuthService(apiClient)
	es := services.NewEventService(apiClient)
	sm := session.NewManager(store, as, session.WithLogger(log))

	a := newApp(sm, as, es, bufio.NewReader(os.Stdin), os.Stdout)
	a.config = c
	a.log = log
	a.closeStore = closeStore
	return a, nil
}

func newApp(sm *session.Manager, as services.AuthService, es services.EventService, r *bufio.Reader, w io.Writer) *App {
	a := &App{
		log:          logging.Nop(),
		session:      sm,
		authService:  as,
		eventService: es,
		reader:       r,
		out:          w,
		now:          time.Now,
		closeStore:   func() error { return nil },
		state:        sm.State(),
	}
	a.unsubscribeFn = sm.Subscribe(a.onSessionChange)
	return a
}

// onSessionChange keeps the prompt in step with the session and tells the
// user whenever they end up signed out.
func (a *App) onSessionChange(s session.State) {
	prev := a.state
	a.state = s
	if prev.Authenticated() && !s.Authenticated() {
		fmt.Fprintln(a.out, "You are now signed out.")
	}
}

// Run restores the previous session and blocks in the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to unievents (type 'help' for commands)")
	fmt.Fprintln(a.out, "Restoring session...")
	a.session.Bootstrap(ctx)
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Welcome back, %s\n", a.state.User.Name)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() {
	if a.unsubscribeFn != nil {
		a.unsubscribeFn()
		a.unsubscribeFn = nil
	}
	if err := a.closeStore(); err != nil {
		a.log.Warn(context.Background(), "closing credential store", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.state.Authenticated()
}

func (a *App) getStatus() string {
	switch {
	case a.state.Loading:
		return "loading"
	case a.state.User != nil:
		return fmt.Sprintf("%s (%s)", a.state.User.Name, a.state.User.Role.DisplayName())
	default:
		return "guest"
	}
}
