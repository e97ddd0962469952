package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	configpkg "github.com/minhyannv/ai-playground/pkg/config"
	"github.com/minhyannv/ai-playground/pkg/console"
	"github.com/minhyannv/ai-playground/pkg/games"
	"github.com/minhyannv/ai-playground/pkg/llm"
	loggerpkg "github.com/minhyannv/ai-playground/pkg/logger"
	"github.com/minhyannv/ai-playground/pkg/prompt"
	"github.com/minhyannv/ai-playground/pkg/session"
	"github.com/minhyannv/ai-playground/pkg/validator"
)

// modelClient is what the commands need from the model API.
type modelClient interface {
	validator.Completer
	session.Streamer
}

type appLogger interface {
	loggerpkg.Logger
	Sync() error
}

// app carries the process collaborators so commands can run against fakes.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	getenv func(string) string

	newClient func(cfg configpkg.Config, l loggerpkg.Logger) modelClient
	newLogger func(cfg configpkg.Config) (appLogger, error)
}

func defaultNewClient(cfg configpkg.Config, l loggerpkg.Logger) modelClient {
	return llm.New(cfg, llm.WithLogger(l))
}

func defaultNewLogger(cfg configpkg.Config) (appLogger, error) {
	l, err := loggerpkg.New(loggerpkg.Options{
		Level: cfg.LogLevel,
		Dir:   cfg.LogDir,
		Name:  cfg.LogName,
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// cliFlags holds values bound to cobra flags.
type cliFlags struct {
	logLevel  string
	logDir    string
	gamesFile string
}

// startup is what prepare hands to a command once startup checks passed.
type startup struct {
	cfg    configpkg.Config
	logger appLogger
	client modelClient
}

// loadConfig merges defaults, flags and environment.
func (a *app) loadConfig(flags cliFlags) (configpkg.Config, error) {
	cfg := configpkg.DefaultConfig()
	cfg.LogLevel = flags.logLevel
	cfg.LogDir = flags.logDir
	if flags.gamesFile != "" {
		cfg.GamesFile = flags.gamesFile
	}
	cfg = configpkg.Normalize(configpkg.FromEnv(cfg, a.getenv))
	return cfg, cfg.ValidateLogLevel()
}

// prepare builds the logger and client, then checks the API key with one
// probe request. Nothing interactive is printed before it succeeds.
func (a *app) prepare(ctx context.Context, flags cliFlags) (*startup, error) {
	cfg, err := a.loadConfig(flags)
	if err != nil {
		return nil, err
	}

	l, err := a.newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	l.Info("Program has started", map[string]any{"log_level": cfg.LogLevel, "model": cfg.Model})

	if err := cfg.Validate(); err != nil {
		l.Error("invalid configuration", err)
		_ = l.Sync()
		return nil, err
	}

	client := a.newClient(cfg, l)
	result := validator.Validate(ctx, client, l)
	if err := result.Err(); err != nil {
		_ = l.Sync()
		return nil, err
	}
	_, _ = fmt.Fprintln(a.out, prompt.KeyValid)

	return &startup{cfg: cfg, logger: l, client: client}, nil
}

func (a *app) runValidate(ctx context.Context, flags cliFlags) error {
	rt, err := a.prepare(ctx, flags)
	if err != nil {
		return err
	}
	return rt.logger.Sync()
}

func (a *app) runChat(ctx context.Context, flags cliFlags) error {
	rt, err := a.prepare(ctx, flags)
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	c, err := console.New(a.in, a.out)
	if err != nil {
		return err
	}
	return a.runSession(ctx, rt, c)
}

func (a *app) runGame(ctx context.Context, flags cliFlags) error {
	rt, err := a.prepare(ctx, flags)
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	if rt.cfg.GamesFile == "" {
		return configpkg.ErrMissingGamesFile
	}
	catalog, err := games.Load(rt.cfg.GamesFile)
	if err != nil {
		rt.logger.Error("load games", err)
		return fmt.Errorf("load games: %w", err)
	}
	rt.logger.Debug("games loaded", map[string]any{"count": len(catalog), "path": rt.cfg.GamesFile})

	c, err := console.New(a.in, a.out)
	if err != nil {
		return err
	}
	game, err := games.Select(c, catalog, rt.logger)
	switch {
	case errors.Is(err, games.ErrQuit):
		c.Println(prompt.Farewell)
		return nil
	case errors.Is(err, io.EOF):
		rt.logger.Info("input closed", nil)
		return nil
	case err != nil:
		return err
	}

	return a.runSession(ctx, rt, c, session.WithGameSeed(game.Rules))
}

func (a *app) runSession(ctx context.Context, rt *startup, c *console.Console, opts ...session.Option) error {
	opts = append(opts, session.WithLogger(rt.logger))
	s, err := session.New(rt.client, c, opts...)
	if err != nil {
		return err
	}
	if err := s.Run(ctx); err != nil {
		rt.logger.Error("session ended with error", err)
		return err
	}
	return nil
}
