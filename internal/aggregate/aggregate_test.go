package aggregate

import (
	"errors"
	"testing"

	"quotefetcher/internal/quote"
	"quotefetcher/internal/testutil"
)

func TestFlatten_PreservesOrder(t *testing.T) {
	results := []quote.Result{
		{Offset: 0, Records: testutil.Page(0, 2)},
		{Offset: 2, Records: testutil.Page(2, 3)},
		{Offset: 5, Records: testutil.Page(5, 1)},
	}

	records := Flatten(results)

	if len(records) != 6 {
		t.Fatalf("len(records) = %d, want 6", len(records))
	}

	// Records appear in result order, page contents uninterleaved
	for i, rec := range records {
		want := testutil.Page(i, 1)[0].Symbol
		if rec.Symbol != want {
			t.Errorf("records[%d].Symbol = %q, want %q", i, rec.Symbol, want)
		}
	}
}

func TestFlatten_SkipsFailedPages(t *testing.T) {
	results := []quote.Result{
		{Offset: 0, Records: testutil.Page(0, 2)},
		{Offset: 2, Err: errors.New("simulated HTTP 500")},
		{Offset: 4, Records: testutil.Page(4, 2)},
	}

	records := Flatten(results)

	if len(records) != 4 {
		t.Fatalf("len(records) = %d, want 4", len(records))
	}

	for _, rec := range records {
		if rec.Symbol == "SYM-2" || rec.Symbol == "SYM-3" {
			t.Errorf("record %q from failed page leaked into output", rec.Symbol)
		}
	}
}

func TestFlatten_LengthIsSumOfPages(t *testing.T) {
	results := []quote.Result{
		{Offset: 0, Records: testutil.Page(0, 25)},
		{Offset: 25, Records: testutil.Page(25, 25)},
		{Offset: 50, Records: testutil.Page(50, 7)},
		{Offset: 75, Records: nil},
	}

	if got := len(Flatten(results)); got != 57 {
		t.Errorf("len(Flatten()) = %d, want 57", got)
	}
}

func TestFlatten_Empty(t *testing.T) {
	if got := Flatten(nil); len(got) != 0 {
		t.Errorf("Flatten(nil) = %v, want empty", got)
	}
}

func TestFailed(t *testing.T) {
	pageErr := errors.New("boom")
	results := []quote.Result{
		{Offset: 0, Records: testutil.Page(0, 1)},
		{Offset: 100, Err: pageErr},
		{Offset: 200, Records: testutil.Page(200, 1)},
	}

	failed := Failed(results)

	if len(failed) != 1 {
		t.Fatalf("len(failed) = %d, want 1", len(failed))
	}
	if failed[0].Offset != 100 || !errors.Is(failed[0].Err, pageErr) {
		t.Errorf("failed[0] = %+v, want offset 100 with boom", failed[0])
	}
}

func TestFailed_NoneFailed(t *testing.T) {
	results := []quote.Result{{Offset: 0, Records: testutil.Page(0, 1)}}

	if failed := Failed(results); len(failed) != 0 {
		t.Errorf("Failed() = %v, want empty", failed)
	}
}
