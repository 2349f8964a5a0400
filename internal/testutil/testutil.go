package testutil

import (
	"context"
	"fmt"

	"quotefetcher/internal/quote"
)

// MockPageFetcher is a mock implementation of the engine.PageFetcher
// interface for testing
type MockPageFetcher struct {
	FetchPageFunc func(ctx context.Context, req quote.Request) ([]quote.Record, error)
}

// FetchPage implements the PageFetcher interface
func (m *MockPageFetcher) FetchPage(ctx context.Context, req quote.Request) ([]quote.Record, error) {
	if m.FetchPageFunc != nil {
		return m.FetchPageFunc(ctx, req)
	}
	return nil, nil
}

// StaticPages creates a mock fetcher serving fixed records per offset,
// with per-offset error overrides for simulated page failures.
func StaticPages(pages map[int][]quote.Record, failures map[int]error) *MockPageFetcher {
	return &MockPageFetcher{
		FetchPageFunc: func(ctx context.Context, req quote.Request) ([]quote.Record, error) {
			if err, ok := failures[req.Offset]; ok {
				return nil, err
			}
			return pages[req.Offset], nil
		},
	}
}

// Page builds n records tagged with the page offset, handy for
// asserting which page each aggregated record came from.
func Page(offset, n int) []quote.Record {
	records := make([]quote.Record, n)
	for i := range records {
		records[i] = quote.Record{
			Symbol: fmt.Sprintf("SYM-%d", offset+i),
			Name:   "Test Coin",
			Price:  "1.00",
		}
	}
	return records
}
