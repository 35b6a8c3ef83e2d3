package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/pocketpet/internal/game"
	"github.com/vovakirdan/pocketpet/internal/storage"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pocketpet/host_key.
	HostKeyPath string

	// DBPath is the path to the save database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// FPS is the tick rate of every session.
	FPS int

	// GameOptions are applied to every pet the server opens.
	GameOptions []game.Option
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.pocketpet/pocketpet.db",
		IdleTimeout: 30 * time.Minute,
		FPS:         DefaultFPS,
	}
}

// SSHServer serves one pet per SSH user name.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	mu     sync.Mutex
	active map[string]*game.Game // slot -> running pet
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pocketpet-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open save database: %w", err)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
		active: make(map[string]*game.Game),
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			store.Close()
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".pocketpet", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		store.Close()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.slotMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := sshSession.Pty(); !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Fatalln(sshSession, "pocketpet needs a terminal: connect with ssh -t")
		return nil, nil
	}

	slot := sshSession.User()
	s.mu.Lock()
	g := s.active[slot]
	s.mu.Unlock()
	if g == nil {
		return nil, nil
	}

	model := NewModel(g, Options{
		Slot:   slot,
		Store:  s.store,
		FPS:    s.config.FPS,
		Bell:   sshSession,
		Logger: s.logger.With("user", slot),
	})
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// slotMiddleware opens the user's pet for the session and saves it when
// the session ends, however it ends. A slot is open in one session at a
// time.
func (s *SSHServer) slotMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		slot := sshSession.User()

		s.mu.Lock()
		if _, busy := s.active[slot]; busy {
			s.mu.Unlock()
			s.logger.Warn("slot already open", "user", slot)
			wish.Fatalln(sshSession, "this pet is already open in another session")
			return
		}
		s.active[slot] = nil // reserved while catching up
		s.mu.Unlock()

		defer func() {
			s.mu.Lock()
			delete(s.active, slot)
			s.mu.Unlock()
		}()

		now := timestamp.FromTime(time.Now())
		g := OpenGame(s.store, slot, now, s.logger.With("user", slot), s.config.GameOptions...)
		s.mu.Lock()
		s.active[slot] = g
		s.mu.Unlock()

		next(sshSession)

		if saved, err := SaveGame(s.store, slot, g); err != nil {
			s.logger.Error("save failed", "user", slot, "error", err)
		} else if saved {
			s.logger.Debug("saved", "user", slot)
		}
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server. Sessions still open save their
// pet as they close.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.store.Close()
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
