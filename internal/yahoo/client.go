package yahoo

import (
	"context"

	"resty.dev/v3"

	"quotefetcher/internal/quote"
)

// screenerBody is the JSON body sent with every screener request.
// Offset and Size select the page; the remaining fields pin the result
// set so that repeated requests see the same ordering.
type screenerBody struct {
	Offset    int    `json:"offset"`
	Size      int    `json:"size"`
	SortField string `json:"sortField"`
	SortType  string `json:"sortType"`
	QuoteType string `json:"quoteType"`
}

// fmtField holds one display-formatted value from the screener.
// Raw numeric variants exist in the payload but are ignored: records
// carry the formatted strings through to the output unchanged.
type fmtField struct {
	Fmt string `json:"fmt"`
}

type rawQuote struct {
	Symbol                     string   `json:"symbol"`
	ShortName                  string   `json:"shortName"`
	RegularMarketPrice         fmtField `json:"regularMarketPrice"`
	RegularMarketChange        fmtField `json:"regularMarketChange"`
	RegularMarketChangePercent fmtField `json:"regularMarketChangePercent"`
	MarketCap                  fmtField `json:"marketCap"`
}

// screenerResponse mirrors {finance: {result: [{total, quotes}]}}
type screenerResponse struct {
	Finance struct {
		Result []struct {
			Total  int        `json:"total"`
			Quotes []rawQuote `json:"quotes"`
		} `json:"result"`
	} `json:"finance"`
}

// Client fetches paginated quote pages from a screener endpoint
type Client struct {
	client *resty.Client
}

// NewClient creates a new screener client
func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{client: client}
}

// post issues one screener request and returns the decoded response
func (c *Client) post(ctx context.Context, offset, size int) (*screenerResponse, error) {
	var result screenerResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(screenerBody{
			Offset:    offset,
			Size:      size,
			SortField: "intradaymarketcap",
			SortType:  "DESC",
			QuoteType: "CRYPTOCURRENCY",
		}).
		SetResult(&result).
		Post("")

	if err != nil {
		return nil, NewNetworkError(offset, err)
	}

	if !resp.IsSuccess() {
		return nil, NewStatusError(offset, resp.StatusCode())
	}

	if len(result.Finance.Result) == 0 {
		return nil, NewDecodeError(offset, "finance.result missing from response")
	}

	return &result, nil
}

// Total issues a single page-0 request and extracts the total record
// count. A failure is returned as an error, never as a zero count, so
// the caller can tell "no data exists" apart from "count lookup failed".
func (c *Client) Total(ctx context.Context, size int) (int, error) {
	result, err := c.post(ctx, 0, size)
	if err != nil {
		return 0, err
	}

	return result.Finance.Result[0].Total, nil
}

// FetchPage retrieves one page of records. Each raw quote is mapped to
// a Record by extracting the display-formatted field values.
func (c *Client) FetchPage(ctx context.Context, req quote.Request) ([]quote.Record, error) {
	result, err := c.post(ctx, req.Offset, req.Size)
	if err != nil {
		return nil, err
	}

	raws := result.Finance.Result[0].Quotes
	records := make([]quote.Record, 0, len(raws))
	for _, q := range raws {
		records = append(records, quote.Record{
			Symbol:        q.Symbol,
			Name:          q.ShortName,
			Price:         q.RegularMarketPrice.Fmt,
			ChangePrice:   q.RegularMarketChange.Fmt,
			ChangePercent: q.RegularMarketChangePercent.Fmt,
			MarketCap:     q.MarketCap.Fmt,
		})
	}

	return records, nil
}
