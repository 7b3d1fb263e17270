package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/charmbracelet/wish/recover"

	"skinkit/internal/config"
	"skinkit/internal/persist"
	"skinkit/internal/router"
	"skinkit/internal/tui"
)

const version = "dev"

// Runtime wires config + middleware + Wish server as a testable unit.
type Runtime struct {
	cfg            config.Config
	logger         *log.Logger
	middlewareIDs  []string
	customizations persist.Document
	server         *ssh.Server
	renderer       func(ssh.Session) *lipgloss.Renderer
}

// New builds the SSH server. Customizations in cfg.SkinFile are loaded once
// and restored into every session's preview.
func New(cfg config.Config, chain []router.Descriptor, logger *log.Logger) (*Runtime, error) {
	if logger == nil {
		logger = log.Default()
	}
	doc, err := loadCustomizations(cfg.SkinFile)
	if err != nil {
		return nil, err
	}

	r := &Runtime{cfg: cfg, logger: logger, customizations: doc, renderer: bm.MakeRenderer}

	// wish runs the last middleware first.
	middleware := []wish.Middleware{
		recover.MiddlewareWithLogger(logger, bm.Middleware(r.teaHandler), activeterm.Middleware()),
	}
	middleware = append(middleware, router.MiddlewareFromDescriptors(chain)...)
	middleware = append(middleware,
		MaxSessionsMiddleware(cfg.MaxSessions, logger),
		logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
	)

	sshServer, err := wish.NewServer(
		wish.WithAddress(cfg.Addr()),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithVersion("skinkit-"+version),
		wish.WithMiddleware(middleware...),
	)
	if err != nil {
		return nil, err
	}
	r.server = sshServer

	ids := []string{"logging", "max-sessions"}
	for _, descriptor := range chain {
		ids = append(ids, descriptor.Name)
	}
	r.middlewareIDs = append(ids, "active-term", "preview")

	return r, nil
}

func loadCustomizations(path string) (persist.Document, error) {
	if path == "" {
		return persist.Document{Version: persist.Version}, nil
	}
	doc, err := persist.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return persist.Document{Version: persist.Version}, nil
	}
	if err != nil {
		return persist.Document{}, fmt.Errorf("load skin file: %w", err)
	}
	return doc, nil
}

// MiddlewareIDs lists the middleware in execution order, outermost first.
func (r *Runtime) MiddlewareIDs() []string {
	out := make([]string, len(r.middlewareIDs))
	copy(out, r.middlewareIDs)
	return out
}

func (r *Runtime) Address() string {
	return r.server.Addr
}

// Run serves until ctx is cancelled or the process is interrupted.
func (r *Runtime) Run(ctx context.Context) error {
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-ctx.Done()
		_ = r.server.Shutdown(context.Background())
	}()

	r.logger.Info("startup",
		"version", version,
		"addr", r.cfg.Addr(),
		"middleware", r.middlewareIDs,
		"host_key_path", r.cfg.HostKeyPath,
		"idle_timeout", r.cfg.IdleTimeout,
		"max_sessions", r.cfg.MaxSessions,
		"variant", r.cfg.Variant,
		"skin_file", r.cfg.SkinFile,
	)
	err := r.server.ListenAndServe()
	if errors.Is(err, ssh.ErrServerClosed) || err == nil {
		return nil
	}

	return err
}

func (r *Runtime) teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	variant := r.cfg.Variant
	if id, ok := router.IdentityFrom(s); ok {
		variant = id.Variant
	}
	opts := tui.Options{
		Variant:        variant,
		Renderer:       r.renderer(s),
		Customizations: r.customizations,
		SkinFile:       r.cfg.SkinFile,
		Logger:         r.logger,
	}
	if info, ok := router.SessionInfoFrom(s); ok {
		opts.Term, opts.Width, opts.Height = info.Term, info.Width, info.Height
	} else if pty, _, ok := s.Pty(); ok {
		opts.Term, opts.Width, opts.Height = pty.Term, pty.Window.Width, pty.Window.Height
	}

	m, err := tui.New(opts)
	if err != nil {
		r.logger.Error("preview failed", "user", s.User(), "err", err)
		wish.Errorln(s, "preview unavailable")
		return nil, nil
	}
	return m, []tea.ProgramOption{tea.WithAltScreen()}
}
