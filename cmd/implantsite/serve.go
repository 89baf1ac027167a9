package main

import (
	"context"
	"github.com/spf13/cobra"
	"implantsite/internal/serve"
	"os"
	"os/signal"
	"syscall"
)

func serveCmd(g *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the blog and reload when the sheet changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Serve.Addr = addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, err := serve.New(cfg, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			return s.ListenAndServe(ctx, cfg.Serve.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Override serve.addr")
	return cmd
}
