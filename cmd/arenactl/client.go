package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arenacode/arenactl/internal/api"
	"github.com/arenacode/arenactl/internal/config"
	"github.com/arenacode/arenactl/internal/pkg/logs"
	"github.com/arenacode/arenactl/internal/session"
)

type clientContext struct {
	Cmd    *cobra.Command
	Args   []string
	Config config.Config
	Client *api.Client
	Store  *session.Store
	Logger *logs.Logger
}

// requireSession returns the saved session or fails with a hint to
// log in first. Commands that need an identity must not proceed on an
// unauthenticated store.
func (ctx *clientContext) requireSession() (api.Session, error) {
	if s, ok := ctx.Store.Current(); ok {
		return s, nil
	}
	return api.Session{}, errors.New("not logged in, run 'arenactl login' first")
}

func (ctx *clientContext) saveSession() error {
	return ctx.Store.SaveFile(ctx.Config.SessionFile)
}

func resolveFile(files ...string) (string, error) {
	for _, file := range files {
		if len(file) == 0 {
			continue
		}
		if _, err := os.Stat(file); err == nil {
			return file, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return "", os.ErrNotExist
}

// getConfig reads config with filename from '--config' flag. Missing
// config file is not an error: defaults plus environment are enough
// to talk to a local backend.
func getConfig(cmd *cobra.Command) (config.Config, error) {
	flagFilename, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	envFilename := os.Getenv(config.ConfigEnv)
	resolved, err := resolveFile(flagFilename, envFilename, defaultConfigFile())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return withDefaultPaths(config.Default()), nil
		}
		return config.Config{}, err
	}
	cfg, err := config.LoadFromFile(resolved)
	if err != nil {
		return config.Config{}, fmt.Errorf("unable to load config %q: %w", resolved, err)
	}
	return withDefaultPaths(cfg), nil
}

func withDefaultPaths(cfg config.Config) config.Config {
	if len(cfg.SessionFile) == 0 {
		cfg.SessionFile = filepath.Join(configDir(), "session.json")
	}
	return cfg
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "arena")
}

func defaultConfigFile() string {
	return filepath.Join(configDir(), "config.json")
}

func wrapClientMain(fn func(*clientContext) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig(cmd)
		if err != nil {
			return err
		}
		logger := logs.NewLogger()
		logger.SetLevel(cfg.LogLevel)
		ctx := clientContext{
			Cmd:    cmd,
			Args:   args,
			Config: cfg,
			Store:  session.NewStore(),
			Logger: logger,
			Client: api.NewClient(
				cfg.Endpoint,
				api.WithTimeout(cfg.RequestTimeout()),
				api.WithLogger(logger),
			),
		}
		if err := ctx.Store.LoadFile(cfg.SessionFile); err != nil {
			return fmt.Errorf("unable to load session: %w", err)
		}
		return fn(&ctx)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
