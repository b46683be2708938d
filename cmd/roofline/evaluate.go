package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/roofline/internal/cli"
	"github.com/Veraticus/roofline/internal/model"
	"github.com/Veraticus/roofline/internal/warranty"
	"github.com/spf13/cobra"
)

func evaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "evaluate",
		Aliases: []string{"eval"},
		Short:   "Decide which warranty tiers a purchase qualifies for",
		Long: `Read a JSON array of line items from stdin, classify them, and print the
category coverage checklist followed by the eligibility of each warranty tier.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			items, err := readLineItems(cmd)
			if err != nil {
				return err
			}

			evaluator, err := buildEvaluator()
			if err != nil {
				return err
			}
			result := evaluator.Evaluate(items)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return printEligibility(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}

func printEligibility(out io.Writer, result model.EligibilityResult) error {
	subtypes := make(map[model.Category][]string)
	for _, item := range result.Items {
		if item.IsCategorized() {
			subtypes[item.Category] = appendUnique(subtypes[item.Category], string(item.Subtype))
		}
	}

	_, _ = fmt.Fprintln(out, cli.FormatTitle("Category coverage"))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range model.AllCategories() {
		_, _ = fmt.Fprintf(w, "  %s\t%s\t%s\n",
			cli.Badge(result.Coverage[c]),
			c.DisplayName(),
			cli.FormatSubtle(strings.Join(subtypes[c], ", ")))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	premium := "no"
	if result.HasPremiumShingle {
		premium = "yes"
	}
	_, _ = fmt.Fprintf(out, "\nQualifying categories: %d/%d   Premium shingle: %s\n\n",
		result.QualifyingCategoryCount, len(model.AllCategories()), premium)

	_, _ = fmt.Fprintln(out, cli.FormatTitle("Warranty tiers"))
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, req := range warranty.Requirements() {
		_, _ = fmt.Fprintf(w, "  %s\t%s\t%s\n",
			cli.Badge(result.Eligible(req.Tier)),
			req.DisplayName,
			cli.FormatSubtle(describeRequirement(req)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if missing := result.UncategorizedItems(); len(missing) > 0 {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("%d uncategorized item(s):", len(missing))))
		for _, ci := range missing {
			_, _ = fmt.Fprintf(out, "  %s  %s\n", valueOrDash(ci.Item.ItemCode), ci.Item.Description)
		}
	}

	if result.RuleSetVersion != "" {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, cli.FormatSubtle("Rule set "+result.RuleSetVersion))
	}
	return nil
}

func describeRequirement(req warranty.Requirement) string {
	desc := fmt.Sprintf("%d+ categories", req.MinCategories)
	if req.RequiresPremium {
		desc += ", premium shingle"
	}
	if req.Credential != warranty.CredentialNone {
		desc += ", " + string(req.Credential) + " contractor"
	}
	return desc
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
