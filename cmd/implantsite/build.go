package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"implantsite/internal/build"
	"os"
	"os/signal"
	"syscall"
)

func buildCmd(g *globalFlags) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the static blog pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup()
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.Build.PublicDir = outDir
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			b := &build.Builder{Cfg: cfg, Log: logger}
			res, err := b.Run(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "built %d pages for %d articles into %s (%d warnings)\n",
				res.Pages, res.Articles, cfg.Build.PublicDir, len(res.Warnings))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Override build.public_dir")
	return cmd
}
