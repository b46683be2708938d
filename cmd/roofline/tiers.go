package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Veraticus/roofline/internal/cli"
	"github.com/Veraticus/roofline/internal/warranty"
	"github.com/spf13/cobra"
)

func tiersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Show the warranty decision table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			reqs := warranty.Requirements()

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), reqs)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.FormatHeader("TIER"),
				cli.FormatHeader("NAME"),
				cli.FormatHeader("MIN CATEGORIES"),
				cli.FormatHeader("PREMIUM SHINGLE"),
				cli.FormatHeader("CONTRACTOR"))
			for _, req := range reqs {
				premium := "-"
				if req.RequiresPremium {
					premium = "required"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					req.Tier, req.DisplayName, req.MinCategories, premium, req.Credential)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Bool("json", false, "Print the table as JSON")
	return cmd
}
