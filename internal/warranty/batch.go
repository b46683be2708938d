package warranty

import (
	"context"
	"sync"
	"time"

	"github.com/Veraticus/roofline/internal/common"
	"github.com/Veraticus/roofline/internal/model"
)

// Invoice groups the line items of one customer purchase.
type Invoice struct {
	ID    string           `json:"id"`
	Items []model.LineItem `json:"items"`
}

// BatchOptions configures batch evaluation.
type BatchOptions struct {
	// OnResult, if set, is called once per evaluated invoice from worker goroutines.
	OnResult        func(BatchResult)
	ParallelWorkers int
}

// DefaultBatchOptions returns sensible defaults.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		ParallelWorkers: 4,
	}
}

// BatchResult pairs an invoice with its evaluation.
type BatchResult struct {
	InvoiceID string                  `json:"invoice_id"`
	Result    model.EligibilityResult `json:"result"`
	Index     int                     `json:"-"`
}

// BatchSummary contains statistics about a batch run.
type BatchSummary struct {
	EligibleByTier map[model.Tier]int
	TotalInvoices  int
	TotalItems     int
	Uncategorized  int
	ProcessingTime time.Duration
}

type batchJob struct {
	invoice Invoice
	index   int
}

// EvaluateBatch evaluates invoices on a bounded worker pool.
// Results are returned in input order. Cancelling ctx stops dispatch and returns ctx.Err().
func (e *Evaluator) EvaluateBatch(ctx context.Context, invoices []Invoice, opts BatchOptions) ([]BatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return []BatchResult{}, nil
	}

	workers := opts.ParallelWorkers
	if workers <= 0 {
		workers = DefaultBatchOptions().ParallelWorkers
	}
	if workers > len(invoices) {
		workers = len(invoices)
	}

	startTime := time.Now()
	common.LogInfo("Starting batch evaluation", common.Fields{
		"invoices": len(invoices),
		"workers":  workers,
	})

	jobs := make(chan batchJob)
	resultsChan := make(chan BatchResult, len(invoices))

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for job := range jobs {
				res := BatchResult{
					InvoiceID: job.invoice.ID,
					Index:     job.index,
					Result:    e.Evaluate(job.invoice.Items),
				}
				if opts.OnResult != nil {
					opts.OnResult(res)
				}
				resultsChan <- res
			}
		}()
	}

	var cancelled error
dispatch:
	for i, inv := range invoices {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break dispatch
		case jobs <- batchJob{invoice: inv, index: i}:
		}
	}
	close(jobs)
	wg.Wait()
	close(resultsChan)

	if cancelled != nil {
		common.LogWarn("Batch evaluation cancelled", common.Fields{"error": cancelled.Error()})
		return nil, cancelled
	}

	results := make([]BatchResult, len(invoices))
	for res := range resultsChan {
		results[res.Index] = res
	}

	common.LogInfo("Finished batch evaluation", common.Fields{
		"invoices": len(invoices),
		"duration": time.Since(startTime).String(),
	})

	return results, nil
}

// Summarize aggregates batch results.
func Summarize(results []BatchResult, elapsed time.Duration) BatchSummary {
	summary := BatchSummary{
		EligibleByTier: make(map[model.Tier]int, len(requirements)),
		TotalInvoices:  len(results),
		ProcessingTime: elapsed,
	}
	for _, t := range model.AllTiers() {
		summary.EligibleByTier[t] = 0
	}

	for _, res := range results {
		summary.TotalItems += len(res.Result.Items)
		summary.Uncategorized += len(res.Result.UncategorizedItems())
		for _, t := range res.Result.EligibleTiers() {
			summary.EligibleByTier[t]++
		}
	}

	return summary
}
