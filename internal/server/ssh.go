// Package server serves the titlebar over SSH.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/Gaurav-Gosain/titlebar/internal/app"
	"github.com/Gaurav-Gosain/titlebar/internal/config"
	"github.com/Gaurav-Gosain/titlebar/internal/input"
	"github.com/Gaurav-Gosain/titlebar/internal/window"
	"github.com/charmbracelet/ssh"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string // Host key; defaults to ~/.ssh/titlebar_host_key
	Config  *config.UserConfig
	Logger  *log.Logger
}

// StartSSHServer runs the SSH server until ctx is cancelled. Every session
// gets its own simulated window and titlebar.
func StartSSHServer(ctx context.Context, cfg *SSHServerConfig) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "titlebar_host_key")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	app.SetInputHandler(input.HandleInput)

	server, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler(cfg, logger)),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting SSH server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("SSH server error: %w", err)
	}

	logger.Info("Shutting down SSH server...")
	return server.Shutdown(context.Background())
}

// teaHandler creates a window and titlebar for each SSH session.
func teaHandler(cfg *SSHServerConfig, logger *log.Logger) bubbletea.Handler {
	return func(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, active := sshSession.Pty()
		if !active {
			wish.Fatalln(sshSession, "titlebar requires an interactive terminal")
			return nil, nil
		}

		userConfig := cfg.Config
		if userConfig == nil {
			userConfig = config.DefaultConfig()
		}
		sessionLogger := logger.With("user", sshSession.User())

		closed := make(chan struct{})
		var closeOnce sync.Once
		sim := window.NewSim(window.SimOptions{
			StartMaximized: userConfig.Window.StartMaximized,
			QueryDelay:     userConfig.Window.QueryDelay.Duration,
			EventDelay:     userConfig.Window.EventDelay.Duration,
			FailQuery:      userConfig.Window.FailQuery,
			OnClose:        func() { closeOnce.Do(func() { close(closed) }) },
			Logger:         sessionLogger,
		})

		model := app.New(app.Options{
			Owner:    sim,
			External: sim,
			Config:   userConfig,
			Logger:   sessionLogger,
			Closed:   closed,
			Width:    pty.Window.Width,
			Height:   pty.Window.Height,
		})

		go func() {
			<-sshSession.Context().Done()
			model.Cleanup()
			sim.Shutdown()
			sessionLogger.Debug("session ended", "titlebar", model.ID)
		}()

		return model, []tea.ProgramOption{
			tea.WithFPS(config.NormalFPS),
		}
	}
}
