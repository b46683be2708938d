package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Veraticus/roofline/internal/cli"
	"github.com/Veraticus/roofline/internal/model"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify invoice line items into roofing system categories",
		Long: `Read a JSON array of line items from stdin and print the category, subtype
and match source for each one. Items no rule recognizes are listed as uncategorized.`,
		Example: `  echo '[{"item_code":"02GASTZ3CW","description":"Timberline HDZ Charcoal"}]' | roofline classify`,
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
			classified := evaluator.Classifier().ClassifyAll(items)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), classified)
			}
			return printClassified(cmd, classified)
		},
	}

	cmd.Flags().Bool("json", false, "Print results as JSON")
	return cmd
}

func printClassified(cmd *cobra.Command, classified []model.ClassifiedItem) error {
	out := cmd.OutOrStdout()
	if len(classified) == 0 {
		_, err := fmt.Fprintln(out, cli.FormatSubtle("No line items."))
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.FormatHeader("CODE"),
		cli.FormatHeader("DESCRIPTION"),
		cli.FormatHeader("QTY"),
		cli.FormatHeader("CATEGORY"),
		cli.FormatHeader("SUBTYPE"),
		cli.FormatHeader("MATCHED BY"))

	uncategorized := 0
	for _, ci := range classified {
		category := cli.FormatWarning("uncategorized")
		if ci.IsCategorized() {
			category = ci.Category.DisplayName()
		} else {
			uncategorized++
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			valueOrDash(ci.Item.ItemCode),
			valueOrDash(truncateString(ci.Item.Description, 40)),
			ci.Item.Quantity,
			category,
			valueOrDash(string(ci.Subtype)),
			valueOrDash(string(ci.MatchedBy)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if uncategorized > 0 {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("%d of %d items did not match any product rule", uncategorized, len(classified))))
	}
	return nil
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
