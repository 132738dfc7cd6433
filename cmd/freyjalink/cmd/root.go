/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/ssargent/freyjalink/pkg/config"
	"github.com/ssargent/freyjalink/pkg/handle"
	"github.com/ssargent/freyjalink/pkg/logging"
	"github.com/ssargent/freyjalink/pkg/storage"
)

// skipStoreAnnotation marks commands that must not open the link store
const skipStoreAnnotation = "freyjalink/skip-store"

type appKey struct{}

// app carries everything a command needs once the store is open
type app struct {
	config   *config.Config
	logger   *slog.Logger
	factory  handle.Factory
	registry *prometheus.Registry
	links    *storage.LinkStorage
}

// parser returns the factory's text parser
func (a *app) parser() (handle.Parser, error) {
	p, ok := a.factory.(handle.Parser)
	if !ok {
		return nil, fmt.Errorf("handle type %q has no text form", a.config.Handle.Type)
	}
	return p, nil
}

func appFrom(cmd *cobra.Command) (*app, error) {
	a, ok := cmd.Context().Value(appKey{}).(*app)
	if !ok {
		return nil, fmt.Errorf("store not found in context")
	}
	return a, nil
}

// session remembers the app opened for a single execution so it can be
// closed even when the command fails
type session struct {
	app *app
}

func (s *session) close() error {
	if s.app == nil || s.app.links == nil {
		return nil
	}
	err := s.app.links.Close()
	s.app = nil
	return err
}

// newRootCmd builds the command tree
func newRootCmd() (*cobra.Command, *session) {
	sess := &session{}
	rootCmd := &cobra.Command{
		Use:   "freyjalink",
		Short: "FreyjaLink - link record store",
		Long: `FreyjaLink stores links, ordered lists of fixed-width handles,
as flat values in an embedded pebble store.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil || a == nil {
				return err
			}
			sess.app = a
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file (default "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Data directory for the store (overrides config)")

	rootCmd.AddCommand(
		newInitCmd(),
		newPutCmd(),
		newGetCmd(),
		newDeleteCmd(),
		newListCmd(),
		newServeCmd(),
	)
	return rootCmd, sess
}

// loadConfig resolves the configuration from flags and the config file
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	configPath, _ := cmd.Flags().GetString("config")
	explicit := configPath != ""
	if !explicit {
		configPath = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, "", err
		}
		cfg = loaded
	} else if explicit && cmd.Annotations[skipStoreAnnotation] == "" {
		return nil, "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, configPath, nil
}

// openApp loads configuration, opens the store and attaches both to the command context
func openApp(cmd *cobra.Command) (*app, error) {
	if cmd.Annotations[skipStoreAnnotation] != "" {
		return nil, nil
	}

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging)
	if err != nil {
		return nil, err
	}

	factory, err := cfg.HandleFactory()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	registry := prometheus.NewRegistry()
	links, err := storage.Open(storage.Options{
		Path:    filepath.Join(cfg.DataDir, "links"),
		Factory: factory,
		Sync:    cfg.Sync,
		Logger:  logger,
		Metrics: storage.NewMetrics(registry),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	a := &app{
		config:   cfg,
		logger:   logger,
		factory:  factory,
		registry: registry,
		links:    links,
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appKey{}, a))
	return a, nil
}

// run executes the command tree with args and closes the store afterwards
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd, sess := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if cerr := sess.close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
