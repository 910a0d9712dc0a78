package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/titlebar/internal/app"
	"github.com/Gaurav-Gosain/titlebar/internal/config"
	"github.com/Gaurav-Gosain/titlebar/internal/input"
	"github.com/Gaurav-Gosain/titlebar/internal/server"
	"github.com/Gaurav-Gosain/titlebar/internal/window"
	"golang.org/x/term"
)

var errNotATerminal = errors.New("titlebar needs an interactive terminal")

// filterMouseMotion drops motion events that do not change the hover target.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	motion, ok := msg.(tea.MouseMotionMsg)
	if !ok {
		return msg
	}

	m, ok := model.(*app.Model)
	if !ok {
		return msg
	}

	mouse := motion.Mouse()
	if app.ControlAt(mouse.X, mouse.Y, m.Width) == m.Snapshot.Hover {
		return nil
	}
	return msg
}

func cliOverrides() config.Overrides {
	return config.Overrides{
		Title:          title,
		ThemeName:      themeName,
		ASCIIOnly:      asciiOnly,
		StartMaximized: startMaximized,
		FailQuery:      failQuery,
		QueryDelay:     queryDelay,
		EventDelay:     eventDelay,
		QueryTimeout:   queryTimeout,
	}
}

// newLogger writes to the log file under the XDG state directory. The
// terminal belongs to the UI.
func newLogger() (*log.Logger, func(), error) {
	level := log.InfoLevel
	if debugMode {
		level = log.DebugLevel
	}

	path, err := config.GetLogPath()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          config.AppName,
	})
	return logger, func() { _ = f.Close() }, nil
}

func runLocal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotATerminal
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, closeLog = log.New(io.Discard), func() {}
	}
	defer closeLog()

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("Failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	overrides := cliOverrides()
	config.ApplyOverrides(overrides, userConfig)

	if debugMode {
		configPath, _ := config.GetConfigPath()
		logger.Debug("Configuration", "path", configPath)
	}

	app.SetInputHandler(input.HandleInput)

	closed := make(chan struct{})
	var closeOnce sync.Once
	sim := window.NewSim(window.SimOptions{
		StartMaximized: userConfig.Window.StartMaximized,
		QueryDelay:     userConfig.Window.QueryDelay.Duration,
		EventDelay:     userConfig.Window.EventDelay.Duration,
		FailQuery:      userConfig.Window.FailQuery,
		OnClose:        func() { closeOnce.Do(func() { close(closed) }) },
		Logger:         logger,
	})
	defer sim.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan app.ConfigUpdate, 1)
	if configPath, err := config.GetConfigPath(); err == nil {
		err := config.Watch(ctx, configPath, func(cfg *config.UserConfig, err error) {
			config.ApplyOverrides(overrides, cfg)
			select {
			case updates <- app.ConfigUpdate{Config: cfg, Err: err}:
			case <-ctx.Done():
			}
		})
		if err != nil {
			logger.Warn("Config hot reload disabled", "err", err)
		}
	}

	model := app.New(app.Options{
		Owner:         sim,
		External:      sim,
		Config:        userConfig,
		Logger:        logger,
		ConfigUpdates: updates,
		Closed:        closed,
	})

	p := tea.NewProgram(
		model,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			p.Send(tea.QuitMsg{})
		case <-ctx.Done():
		}
	}()

	finalModel, err := p.Run()

	if finalApp, ok := finalModel.(*app.Model); ok {
		finalApp.Cleanup()
		logger.Info("Exited", "window", sim.State())
	}

	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          config.AppName,
	})
	if debugMode {
		logger.SetLevel(log.DebugLevel)
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("Failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	config.ApplyOverrides(config.Overrides{
		ASCIIOnly: asciiOnly,
		ThemeName: themeName,
	}, userConfig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	cfg := &server.SSHServerConfig{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
		Config:  userConfig,
		Logger:  logger,
	}
	if err := server.StartSSHServer(ctx, cfg); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}
