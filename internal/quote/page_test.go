package quote

import (
	"errors"
	"testing"
)

func TestRequests_ExactMultiple(t *testing.T) {
	reqs := Requests(200, 100)

	if len(reqs) != 2 {
		t.Fatalf("len(reqs) = %d, want 2", len(reqs))
	}

	if reqs[0].Offset != 0 || reqs[0].Size != 100 {
		t.Errorf("reqs[0] = %+v, want offset 0 size 100", reqs[0])
	}
	if reqs[1].Offset != 100 || reqs[1].Size != 100 {
		t.Errorf("reqs[1] = %+v, want offset 100 size 100", reqs[1])
	}
}

func TestRequests_PartialLastPage(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		size      int
		wantPages int
	}{
		{"one short page", 10, 25, 1},
		{"partial tail", 101, 25, 5},
		{"single record", 1, 100, 1},
		{"large total", 9999, 50, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqs := Requests(tt.total, tt.size)

			if len(reqs) != tt.wantPages {
				t.Fatalf("len(reqs) = %d, want %d", len(reqs), tt.wantPages)
			}

			// Offsets must be ascending multiples of size
			for i, req := range reqs {
				if req.Offset != i*tt.size {
					t.Errorf("reqs[%d].Offset = %d, want %d", i, req.Offset, i*tt.size)
				}
				if req.Size != tt.size {
					t.Errorf("reqs[%d].Size = %d, want %d", i, req.Size, tt.size)
				}
			}
		})
	}
}

func TestRequests_ZeroTotal(t *testing.T) {
	if reqs := Requests(0, 100); len(reqs) != 0 {
		t.Errorf("Requests(0, 100) = %v, want empty", reqs)
	}
}

func TestRequests_InvalidSize(t *testing.T) {
	if reqs := Requests(100, 0); len(reqs) != 0 {
		t.Errorf("Requests(100, 0) = %v, want empty", reqs)
	}
	if reqs := Requests(100, -1); len(reqs) != 0 {
		t.Errorf("Requests(100, -1) = %v, want empty", reqs)
	}
}

func TestResult_Failed(t *testing.T) {
	ok := Result{Offset: 0, Records: []Record{{Symbol: "BTC-USD"}}}
	if ok.Failed() {
		t.Error("Failed() = true for successful result")
	}

	bad := Result{Offset: 100, Err: errors.New("boom")}
	if !bad.Failed() {
		t.Error("Failed() = false for failed result")
	}
}

func TestRecord_Fields(t *testing.T) {
	r := Record{
		Symbol:        "BTC-USD",
		Name:          "Bitcoin",
		Price:         "50,000",
		ChangePrice:   "+100",
		ChangePercent: "+0.2%",
		MarketCap:     "1T",
	}

	want := [6]string{"BTC-USD", "Bitcoin", "50,000", "+100", "+0.2%", "1T"}
	if got := r.Fields(); got != want {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
}
