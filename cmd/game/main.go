package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/audio"
	"github.com/tomz197/snake/internal/config"
	"github.com/tomz197/snake/internal/loop/client"
	"github.com/tomz197/snake/internal/loop/server"
	"golang.org/x/term"
)

func main() {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	var player audio.Player = audio.Mute{}
	if !config.GetEnvBool("SNAKE_MUTE", false) {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "err", err)
		} else {
			defer sm.Cleanup()
			player = sm
		}
	}

	user := config.GetEnv("USER", "player")
	c := client.NewClient(server.NewServer(), bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username: user,
		Sound:    player,
		Logger:   logger,
	})

	logger.Info("game started", "user", user)
	if err := c.Run(); err != nil {
		_ = term.Restore(fd, oldState)
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("game ended")
}

// newLogger logs to SNAKE_LOG_FILE when set. Stdout belongs to the game,
// so logs are discarded otherwise.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path := config.GetEnv("SNAKE_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", path, err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	level, err := log.ParseLevel(config.GetEnv("SNAKE_LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, closeFn, nil
}
