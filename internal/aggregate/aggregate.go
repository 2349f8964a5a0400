// Package aggregate flattens per-page fetch results into one dataset.
package aggregate

import "quotefetcher/internal/quote"

// Flatten concatenates the records of all successful pages, preserving
// the relative order the engine returned them in. Failed pages
// contribute nothing; no deduplication, no validation.
func Flatten(results []quote.Result) []quote.Record {
	total := 0
	for _, res := range results {
		total += len(res.Records)
	}

	records := make([]quote.Record, 0, total)
	for _, res := range results {
		if res.Failed() {
			continue
		}
		records = append(records, res.Records...)
	}
	return records
}

// Failed returns the results of the pages that failed, so the caller
// can log exactly which slices of the dataset are missing.
func Failed(results []quote.Result) []quote.Result {
	var failed []quote.Result
	for _, res := range results {
		if res.Failed() {
			failed = append(failed, res)
		}
	}
	return failed
}
