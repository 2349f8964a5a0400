package quote

// Request identifies one page of the remote record set.
// Offset is a non-negative multiple of Size, set once at plan time.
type Request struct {
	Offset int
	Size   int
}

// Result is the outcome of fetching a single page.
// It's designed to be returned by engine workers to the pipeline,
// which distinguishes "this page had zero records" from "this page
// failed": a failed page carries Err and no records.
type Result struct {
	// Offset of the page this result belongs to
	Offset int

	// Records parsed from the page, in upstream order
	Records []Record

	// Err contains any error that occurred during fetch or decode.
	// If Err is not nil, Records is nil.
	Err error
}

// Failed reports whether the page fetch failed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Requests plans the page requests needed to cover total records at
// the given page size, in ascending offset order. A total of zero (or
// a non-positive size) yields no requests.
func Requests(total, size int) []Request {
	if total <= 0 || size <= 0 {
		return nil
	}

	pages := (total + size - 1) / size
	reqs := make([]Request, 0, pages)
	for offset := 0; offset < total; offset += size {
		reqs = append(reqs, Request{Offset: offset, Size: size})
	}
	return reqs
}
