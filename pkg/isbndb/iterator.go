package isbndb

import "context"

// Page is one batch of search results.
type Page struct {
	Items []Resource
	Total int
}

// PageFunc fetches the 1-based page of a result set.
type PageFunc func(ctx context.Context, page int) (Page, error)

// Iterator walks search results, fetching pages on demand. It is not safe
// for concurrent use and cannot be restarted.
type Iterator struct {
	fetch    PageFunc
	pageSize int

	page    int
	fetched int
	total   int
	buf     []Resource
	cur     *Resource
	done    bool
	err     error
}

// NewIterator returns an iterator over the pages produced by fetch. A page
// shorter than pageSize ends the iteration; pageSize <= 0 disables that check.
func NewIterator(pageSize int, fetch PageFunc) *Iterator {
	return &Iterator{fetch: fetch, pageSize: pageSize}
}

// Next advances to the next resource. It returns false when the results are
// exhausted or a page fetch failed; check Err to tell them apart.
func (it *Iterator) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}
	for len(it.buf) == 0 {
		if it.done {
			it.cur = nil
			return false
		}
		if err := ctx.Err(); err != nil {
			it.err = err
			it.cur = nil
			return false
		}
		it.page++
		p, err := it.fetch(ctx, it.page)
		if err != nil {
			it.err = err
			it.cur = nil
			return false
		}
		it.total = p.Total
		it.fetched += len(p.Items)
		it.buf = p.Items
		if len(p.Items) == 0 ||
			(it.pageSize > 0 && len(p.Items) < it.pageSize) ||
			(it.total > 0 && it.fetched >= it.total) {
			it.done = true
		}
	}
	r := it.buf[0]
	it.buf = it.buf[1:]
	it.cur = &r
	return true
}

// Resource returns the current resource, nil before the first Next or after
// the end.
func (it *Iterator) Resource() *Resource {
	return it.cur
}

func (it *Iterator) Err() error {
	return it.err
}

// Total is the result count reported by the last fetched page.
func (it *Iterator) Total() int {
	return it.total
}
