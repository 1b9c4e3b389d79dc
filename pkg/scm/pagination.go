package scm

import (
	"context"
	"fmt"
)

// PageClient fetches a single page of a listing. Resource clients satisfy
// this so the pagination helpers can drive them.
type PageClient[T any] interface {
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[T], error)
}

// PaginationOptions tunes the page-fetching helpers.
type PaginationOptions struct {
	// PageSize overrides the params' limit; clamped to MaxLimit.
	PageSize int

	// MaxPages bounds how many pages are fetched; zero means unbounded.
	MaxPages int
}

// pageCursor walks a listing page by page. The cursor advances by the
// requested page size; a page shorter than requested, or an offset at or
// past the reported total, ends the walk without another request.
type pageCursor[T any] struct {
	ctx      context.Context
	client   PageClient[T]
	path     string
	params   *QueryParams
	pageSize int
	maxPages int
	pages    int
	done     bool
}

func newPageCursor[T any](ctx context.Context, client PageClient[T], path string, params *QueryParams, options *PaginationOptions) *pageCursor[T] {
	cloned := params.Clone()

	pageSize := cloned.EffectiveLimit()
	maxPages := 0

	if options != nil {
		if options.PageSize > 0 {
			pageSize = ClampLimit(options.PageSize)
		}

		maxPages = options.MaxPages
	}

	cloned.Limit = pageSize

	return &pageCursor[T]{
		ctx:      ctx,
		client:   client,
		path:     path,
		params:   cloned,
		pageSize: pageSize,
		maxPages: maxPages,
	}
}

// next fetches the next page, or returns nil when the walk is over.
func (c *pageCursor[T]) next() (*ListResponse[T], error) {
	if c.done {
		return nil, nil
	}

	if c.maxPages > 0 && c.pages >= c.maxPages {
		c.done = true

		return nil, nil
	}

	page, err := c.client.ListWithPath(c.ctx, c.path, c.params)
	if err != nil {
		c.done = true

		return nil, fmt.Errorf("fetching page at offset %d: %w", c.params.Offset, err)
	}

	c.pages++
	c.params.Offset += c.pageSize

	if len(page.Data) < c.pageSize {
		c.done = true
	}

	if page.Total > 0 && c.params.Offset >= page.Total {
		c.done = true
	}

	return page, nil
}

// PaginationIterator iterates over every item in a listing, fetching pages
// on demand.
type PaginationIterator[T any] struct {
	cursor *pageCursor[T]
	buffer []T
	index  int
	err    error
}

// NewPaginationIterator creates an iterator over the listing at path.
func NewPaginationIterator[T any](ctx context.Context, client PageClient[T], path string, params *QueryParams) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		cursor: newPageCursor(ctx, client, path, params, nil),
	}
}

// HasNext reports whether another item is available. It may fetch a page.
func (it *PaginationIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	for it.index >= len(it.buffer) {
		page, err := it.cursor.next()
		if err != nil {
			it.err = err

			return false
		}

		if page == nil {
			return false
		}

		it.buffer = page.Data
		it.index = 0
	}

	return true
}

// Next returns the next item. Call HasNext first.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}

		return zero, ErrNoMoreItems
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All drains the iterator and returns every remaining item. A failure
// mid-collection aborts the whole materialization; no partial result is
// returned.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if it.err != nil {
		return nil, it.err
	}

	return items, nil
}

// ForEach applies fn to every remaining item, stopping at the first error.
func (it *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return it.err
}

// FetchAllPages materializes a whole listing: it walks the cursor to the
// end and returns every item, or an error and nothing.
func FetchAllPages[T any](ctx context.Context, client PageClient[T], path string, params *QueryParams, options *PaginationOptions) ([]T, error) {
	cursor := newPageCursor(ctx, client, path, params, options)

	var items []T

	for {
		page, err := cursor.next()
		if err != nil {
			return nil, err
		}

		if page == nil {
			return items, nil
		}

		items = append(items, page.Data...)
	}
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Items  []T
	Offset int
	Err    error
}

// StreamPages walks a listing in a goroutine and delivers each page on the
// returned channel. The channel is closed after the final page or the
// first error.
func StreamPages[T any](ctx context.Context, client PageClient[T], path string, params *QueryParams, options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		cursor := newPageCursor(ctx, client, path, params, options)

		for {
			offset := cursor.params.Offset

			page, err := cursor.next()
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err, Offset: offset}:
				case <-ctx.Done():
				}

				return
			}

			if page == nil {
				return
			}

			select {
			case results <- PageResult[T]{Items: page.Data, Offset: offset}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}
