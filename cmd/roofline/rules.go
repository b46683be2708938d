package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/roofline/internal/cli"
	"github.com/Veraticus/roofline/internal/common"
	"github.com/Veraticus/roofline/internal/model"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Aliases: []string{"rule"},
		Short:   "Inspect the product rule table",
		Long: `Inspect the ordered product rule table used for classification. The table is
the built-in canonical one unless rules.products is set in the config file.`,
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesValidateCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List product rules in match order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			rs, err := loadRuleSet()
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rs)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, cli.FormatTitle("Rule set "+rs.Version))

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.FormatHeader("#"),
				cli.FormatHeader("CATEGORY"),
				cli.FormatHeader("SUBTYPE"),
				cli.FormatHeader("CODE PATTERN"),
				cli.FormatHeader("KEYWORDS"))
			for i, r := range rs.Rules {
				subtype := string(r.Subtype)
				if rs.IsPremium(r.Subtype) && r.Category == model.CategoryShingles {
					subtype += " *"
				}
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					i+1,
					r.Category,
					subtype,
					valueOrDash(r.CodePattern),
					valueOrDash(strings.Join(r.Keywords, ", ")))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintln(out, cli.FormatSubtle("* premium shingle"))
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the rule set as JSON")
	return cmd
}

func rulesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configured rule table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs, err := loadRuleSet()
			if err != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatError(common.UserMessage(err)))
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
				fmt.Sprintf("Rule set %s is valid (%d rules, premium: %s)",
					rs.Version, len(rs.Rules), joinSubtypes(rs))))
			return err
		},
	}
}

func joinSubtypes(rs model.RuleSet) string {
	names := make([]string, len(rs.PremiumSubtypes))
	for i, s := range rs.PremiumSubtypes {
		names[i] = string(s)
	}
	return valueOrDash(strings.Join(names, ", "))
}
