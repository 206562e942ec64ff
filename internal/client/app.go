// Package client assembles the application: configuration, logging, the
// persistent store, the API transport, the effect dispatcher, and the
// terminal UI, in that order.
package client

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmy/realworld-tui/internal/api"
	"github.com/dmy/realworld-tui/internal/config"
	"github.com/dmy/realworld-tui/internal/dispatch"
	"github.com/dmy/realworld-tui/internal/logger"
	"github.com/dmy/realworld-tui/internal/router"
	"github.com/dmy/realworld-tui/internal/session"
	"github.com/dmy/realworld-tui/internal/store"
	"github.com/dmy/realworld-tui/internal/tui"
)

// App owns the assembled program and the resources it runs on.
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	program *tea.Program
	cancel  context.CancelFunc
}

// NewApp wires the full application. The returned App is ready to Run.
func NewApp() (*App, error) {
	cfg, err := config.Get()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New("client", cfg.App.LogPath)

	st, err := store.New(cfg.Storage.StateDir)
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	transport := api.NewClient(cfg.API.BaseURL, cfg.API.RequestTimeout, log.GetChildLogger())
	nav := router.NewNavigator(router.Home())
	dispatcher := dispatch.New(ctx, transport, st, nav, log.GetChildLogger())

	// An expired or unreadable stored session silently degrades to guest.
	sess := session.Restore(st)

	updates, err := session.Subscribe(ctx, st)
	if err != nil {
		log.Warn().Err(err).Msg("session watching disabled")
		updates = nil
	}

	root := tui.New(dispatcher, nav, sess, cfg.App.PageSize, cfg.App.WebBaseURL, updates)
	program := tea.NewProgram(root, tea.WithAltScreen())

	log.Info().
		Str("api", cfg.API.BaseURL).
		Str("state", st.BasePath()).
		Bool("guest", sess.IsGuest()).
		Msg("client starting")

	return &App{cfg: cfg, log: log, program: program, cancel: cancel}, nil
}

// Run blocks until the user quits or the program fails.
func (a *App) Run() error {
	defer a.cancel()

	if _, err := a.program.Run(); err != nil {
		a.log.Error().Err(err).Msg("program terminated")
		return fmt.Errorf("run ui: %w", err)
	}
	a.log.Info().Msg("client stopped")
	return nil
}
