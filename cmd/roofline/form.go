package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/roofline/internal/warranty"
	"github.com/spf13/cobra"
)

func formCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Produce a warranty registration form for a purchase",
		Long: `Read a JSON array of line items from stdin, evaluate them, and print a
warranty form document listing covered categories, qualifying items and tiers.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			invoiceID, _ := cmd.Flags().GetString("invoice")

			items, err := readLineItems(cmd)
			if err != nil {
				return err
			}

			evaluator, err := buildEvaluator()
			if err != nil {
				return err
			}

			form := warranty.NewForm(invoiceID, evaluator.Evaluate(items), time.Now())
			data, err := form.JSON()
			if err != nil {
				return fmt.Errorf("failed to encode form: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().String("invoice", "", "Invoice ID to record on the form")
	return cmd
}
