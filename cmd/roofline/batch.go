package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/roofline/internal/cli"
	"github.com/Veraticus/roofline/internal/common"
	"github.com/Veraticus/roofline/internal/config"
	"github.com/Veraticus/roofline/internal/model"
	"github.com/Veraticus/roofline/internal/warranty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func batchCmd(interrupts *cli.InterruptHandler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Evaluate many invoices in parallel",
		Long: `Read a JSON array of invoices ({"id": "...", "items": [...]}) from stdin and
evaluate them on a worker pool. Prints one summary row per invoice, in input order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runBatch(cmd)
			if err != nil && interrupts != nil && interrupts.WasInterrupted() {
				return common.NewUserError("batch evaluation interrupted", err)
			}
			return err
		},
	}

	cmd.Flags().Int("workers", warranty.DefaultBatchOptions().ParallelWorkers, "Number of parallel workers")
	cmd.Flags().Bool("progress", false, "Show a progress bar on stderr")
	cmd.Flags().Bool("json", false, "Print results as JSON")
	return cmd
}

func runBatch(cmd *cobra.Command) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	showProgress, _ := cmd.Flags().GetBool("progress")

	workers, _ := cmd.Flags().GetInt("workers")
	if !cmd.Flags().Changed("workers") {
		workers = config.BatchWorkers(viper.GetViper(), workers)
	}

	invoices, err := readInvoices(cmd)
	if err != nil {
		return err
	}

	evaluator, err := buildEvaluator()
	if err != nil {
		return err
	}

	opts := warranty.DefaultBatchOptions()
	opts.ParallelWorkers = workers
	if showProgress && len(invoices) > 0 {
		bar := newProgressBar(cmd.ErrOrStderr(), len(invoices))
		opts.OnResult = func(warranty.BatchResult) {
			_ = bar.Add(1)
		}
		defer func() { _ = bar.Finish() }()
	}

	start := time.Now()
	results, err := evaluator.EvaluateBatch(cmd.Context(), invoices, opts)
	if err != nil {
		common.LogError(err, "Batch evaluation failed", common.Fields{"invoices": len(invoices)})
		return fmt.Errorf("batch evaluation stopped: %w", err)
	}
	summary := warranty.Summarize(results, time.Since(start))

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	return printBatch(cmd.OutOrStdout(), results, summary)
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Evaluating invoices...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func printBatch(out io.Writer, results []warranty.BatchResult, summary warranty.BatchSummary) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(out, cli.FormatSubtle("No invoices."))
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.FormatHeader("INVOICE"),
		cli.FormatHeader("ITEMS"),
		cli.FormatHeader("CATEGORIES"),
		cli.FormatHeader("PREMIUM"),
		cli.FormatHeader("ELIGIBLE TIERS"))

	for _, res := range results {
		premium := "no"
		if res.Result.HasPremiumShingle {
			premium = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d/%d\t%s\t%s\n",
			res.InvoiceID,
			len(res.Result.Items),
			res.Result.QualifyingCategoryCount,
			len(model.AllCategories()),
			premium,
			valueOrDash(joinTiers(res.Result.EligibleTiers())))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, cli.FormatTitle("Summary"))
	_, _ = fmt.Fprintf(out, "  Invoices: %d   Items: %d   Uncategorized: %d   Time: %s\n",
		summary.TotalInvoices, summary.TotalItems, summary.Uncategorized,
		summary.ProcessingTime.Round(time.Millisecond))
	for _, t := range model.AllTiers() {
		_, _ = fmt.Fprintf(out, "  %-18s %d\n", string(t), summary.EligibleByTier[t])
	}
	return nil
}

func joinTiers(tiers []model.Tier) string {
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
