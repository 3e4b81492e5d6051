package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/spacerun/internal/config"
	"github.com/vovakirdan/spacerun/internal/core"
	"github.com/vovakirdan/spacerun/internal/storage"
)

// Smallest terminal a remote pilot can fly in.
const (
	minSessionWidth  = 40
	minSessionHeight = 12
)

// SSHServerConfig configures remote play.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // empty means ~/.spacerun/host_key
	DBPath      string        // shared leaderboard
	IdleTimeout time.Duration // idle connections are dropped after this
	MaxSessions int           // 0 means unlimited
	TickRate    int
	Game        config.SpaceRunConfig
}

// DefaultSSHServerConfig returns the settings used by `spacerun serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.spacerun/scores.db",
		IdleTimeout: 30 * time.Minute,
		MaxSessions: 32,
		TickRate:    60,
		Game:        config.DefaultSpaceRunConfig(),
	}
}

// SSHServer hosts one menu session per SSH connection. All sessions share
// the gameplay config and the scores database.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int32
}

// NewSSHServer prepares the host key and the Wish middleware chain.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacerun-ssh",
	})

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("scores disabled", "db", cfg.DBPath, "error", err)
		store = nil
	}

	srv := &SSHServer{config: cfg, store: store, logger: logger}

	// Middleware runs last to first: sessions are admitted before a
	// program is started for them.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.admit,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKeyPath defaults the key location and makes sure its
// directory exists. Wish generates the key on first start.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".spacerun", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// admit turns away sessions the server cannot host and logs the rest.
func (s *SSHServer) admit(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		user, remote := sess.User(), sess.RemoteAddr().String()

		n := s.active.Add(1)
		defer s.active.Add(-1)
		if s.config.MaxSessions > 0 && int(n) > s.config.MaxSessions {
			s.logger.Warn("session rejected", "user", user, "remote", remote, "reason", "full")
			wish.Fatalln(sess, "Space Run is full, try again later.")
			return
		}

		pty, _, ok := sess.Pty()
		if !ok {
			s.logger.Warn("session rejected", "user", user, "remote", remote, "reason", "no pty")
			wish.Fatalln(sess, "Space Run needs an interactive terminal: ssh -t")
			return
		}
		if pty.Window.Width < minSessionWidth || pty.Window.Height < minSessionHeight {
			s.logger.Warn("session rejected", "user", user, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))
			wish.Fatalf(sess, "Terminal too small: need at least %dx%d.\n", minSessionWidth, minSessionHeight)
			return
		}

		start := time.Now()
		s.logger.Info("session started", "user", user, "remote", remote, "active", n)
		next(sess)
		s.logger.Info("session ended", "user", user, "remote", remote, "duration", time.Since(start).Round(time.Second))
	}
}

// teaHandler builds the session model. Remote pilots have no speaker, so
// sessions run silent.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	rt := core.DefaultConfig()
	rt.ScreenW = pty.Window.Width
	rt.ScreenH = pty.Window.Height
	rt.TickRate = s.config.TickRate
	rt.Seed = time.Now().UnixNano()

	model := NewSessionModel(SessionOptions{
		Store:   s.store,
		Game:    s.config.Game,
		Runtime: rt,
		Player:  sess.User(),
		Logger:  s.logger.With("user", sess.User()),
	})
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.config.Address, "max_sessions", s.config.MaxSessions)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.closeStore()
			return fmt.Errorf("ssh server: %w", err)
		}
		s.closeStore()
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.active.Load())
	return s.Shutdown()
}

// Shutdown waits up to ten seconds for sessions to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// ActiveSessions reports how many pilots are connected.
func (s *SSHServer) ActiveSessions() int {
	return int(s.active.Load())
}
