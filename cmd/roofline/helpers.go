package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/roofline/internal/classification"
	"github.com/Veraticus/roofline/internal/cli"
	"github.com/Veraticus/roofline/internal/common"
	"github.com/Veraticus/roofline/internal/config"
	"github.com/Veraticus/roofline/internal/model"
	"github.com/Veraticus/roofline/internal/warranty"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// readLineItems decodes a JSON array of line items from the command's stdin.
func readLineItems(cmd *cobra.Command) ([]model.LineItem, error) {
	var items []model.LineItem
	if err := readInput(cmd, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.LineItem{}
	}
	return items, nil
}

// readInvoices decodes a JSON array of invoices from the command's stdin.
func readInvoices(cmd *cobra.Command) ([]warranty.Invoice, error) {
	var invoices []warranty.Invoice
	if err := readInput(cmd, &invoices); err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == "" {
			invoices[i].ID = fmt.Sprintf("invoice-%d", i+1)
		}
	}
	return invoices, nil
}

func readInput(cmd *cobra.Command, v any) error {
	err := cli.ReadJSON(cmd.Context(), cmd.InOrStdin(), v)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cli.ErrEmptyInput):
		return common.NewUserError("nothing to read on stdin; pipe a JSON array in", common.ErrNoLineItems)
	case errors.Is(err, cli.ErrInputCancelled):
		return err
	default:
		return common.NewUserError("stdin is not valid JSON", fmt.Errorf("%w: %w", common.ErrInvalidInput, err))
	}
}

// loadRuleSet reads the configured rule table.
func loadRuleSet() (model.RuleSet, error) {
	rs, err := config.LoadRuleSet(viper.GetViper())
	if err != nil {
		return model.RuleSet{}, common.NewUserError("rule configuration is invalid", err)
	}
	return rs, nil
}

// buildEvaluator wires the configured rule table into an evaluator.
func buildEvaluator() (*warranty.Evaluator, error) {
	rs, err := loadRuleSet()
	if err != nil {
		return nil, err
	}
	classifier, err := classification.NewClassifier(rs)
	if err != nil {
		return nil, common.NewUserError("rule configuration is invalid", err)
	}
	return warranty.NewEvaluator(classifier), nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
