package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"implantsite/internal/ingest"
	"time"
)

func checkCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the config and report problems in the articles sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := g.setup()
			if err != nil {
				return err
			}
			res, err := ingest.Load(cfg.Source.Path, ingest.OptionsFromConfig(cfg))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, w := range res.Warnings {
				fmt.Fprintln(out, w.String())
			}
			drafts := 0
			for _, a := range res.Articles {
				if a.Draft {
					drafts++
				}
			}
			fmt.Fprintf(out, "%d articles (%d drafts), %d rows skipped, %d warnings\n",
				len(res.Articles), drafts, res.Skipped, len(res.Warnings))
			if n := len(res.Articles); n > 0 {
				last := res.Articles[n-1].PublishDate
				fmt.Fprintf(out, "publishing %s through %s\n",
					res.Articles[0].PublishDate.Format(time.DateOnly), last.Format(time.DateOnly))
			}
			return nil
		},
	}
}
