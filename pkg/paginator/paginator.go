// Package paginator slices an ordered list into fixed-size pages for
// one-item-per-screen browsing.
package paginator

type Paginator[T any] struct {
	items    []T
	perPage  int
	page     int
	lenItems int
	pages    int
}

// New builds a paginator over items positioned at the 1-based page.
// perPage <= 0 falls back to 1, the page size used by every screen.
func New[T any](items []T, page, perPage int) *Paginator[T] {
	if perPage <= 0 {
		perPage = 1
	}
	if page <= 0 {
		page = 1
	}
	lenItems := len(items)
	pages := lenItems / perPage
	if lenItems%perPage != 0 {
		pages++
	}
	return &Paginator[T]{
		items:    items,
		perPage:  perPage,
		page:     page,
		lenItems: lenItems,
		pages:    pages,
	}
}

// Page returns the items of the current page. Empty input or an
// out-of-range page yields an empty slice; callers gate page moves with
// HasNext/HasPrevious and check emptiness before paging at all.
func (p *Paginator[T]) Page() []T {
	start := (p.page - 1) * p.perPage
	if start >= p.lenItems {
		return nil
	}
	end := start + p.perPage
	if end > p.lenItems {
		end = p.lenItems
	}
	return p.items[start:end]
}

func (p *Paginator[T]) PageNumber() int {
	return p.page
}

func (p *Paginator[T]) Pages() int {
	return p.pages
}

func (p *Paginator[T]) HasNext() bool {
	return p.page < p.pages
}

func (p *Paginator[T]) HasPrevious() bool {
	return p.page > 1
}
