// Package cli implements the interactive terminal shell for the eventbook
// client: a read-eval-print loop whose top-level views mirror the tabs of
// the original browser application.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/aka-Harsh/eventbook/internal/client/api"
	"github.com/aka-Harsh/eventbook/internal/client/config"
	"github.com/aka-Harsh/eventbook/internal/client/models"
	"github.com/aka-Harsh/eventbook/internal/client/nav"
	"github.com/aka-Harsh/eventbook/internal/client/session"
	"github.com/aka-Harsh/eventbook/internal/logging"
)

// App wires the session store, navigator and API client together and owns
// all terminal I/O. Every user action mutates exactly one of the two state
// holders and triggers a synchronous re-render.
type App struct {
	config  *config.Config
	session *session.Store
	nav     *nav.Navigator
	client  api.Client
	log     logging.Logger

	dataDir string
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp builds the application from configuration. The data directory is
// created eagerly; it holds the session record and saved QR images.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, err
	}

	client := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout)
	persist := session.NewFilePersistence(filepath.Join(dataDir, "session.json"))
	store := session.NewStore(client, persist, log)

	return &App{
		config:  cfg,
		session: store,
		nav:     nav.New(),
		client:  client,
		log:     log,
		dataDir: dataDir,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run rehydrates the persisted session, aligns the navigator with it, and
// hands control to the REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)
	if u := a.session.Current(); u != nil {
		a.nav.SetIdentity(u.Role)
		a.log.Info(ctx, "session restored", "user", u.Email, "role", u.Role)
	}

	a.render(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) isAdmin() bool {
	u := a.session.Current()
	return u != nil && u.Role == models.RoleAdmin
}

// status builds the prompt segment, e.g. "(john@example.com events)".
func (a *App) status() string {
	u := a.session.Current()
	if u == nil {
		return ""
	}
	return "(" + u.Email + " " + string(a.nav.ActiveTab()) + ")"
}
