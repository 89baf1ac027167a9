package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"implantsite/internal/domain/config"
	"implantsite/internal/logging"
	"log/slog"
	"os"
	"runtime"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	logLevel   string
}

func rootCmd() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:   "implantsite",
		Short: "Blog pipeline for the dental implant referral site",
		Long: `implantsite turns the articles sheet into the site's blog.

It reads the CSV export, normalizes every article body, assigns slugs and
publish dates, and serves or writes the blog pages.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "site.yaml", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Override log.level (debug, info, warn, error)")

	cmd.AddCommand(buildCmd(&g), serveCmd(&g), checkCmd(&g))
	return cmd
}

// setup loads the config and builds the process logger from it.
func (g *globalFlags) setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.LoadOrDefault(g.configPath)
	if err != nil {
		return cfg, nil, fmt.Errorf("config %s: %w", g.configPath, err)
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	logger := logging.New(os.Stderr, cfg.Log)
	slog.SetDefault(logger)
	return cfg, logger, nil
}
