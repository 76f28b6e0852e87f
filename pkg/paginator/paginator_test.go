package paginator

import "testing"

func TestSingleItemPages(t *testing.T) {
	items := []string{"a", "b", "c"}

	for page := 1; page <= len(items); page++ {
		p := New(items, page, 1)

		got := p.Page()
		if len(got) != 1 || got[0] != items[page-1] {
			t.Fatalf("page %d: expected [%s], got %v", page, items[page-1], got)
		}

		if wantNext := page < len(items); p.HasNext() != wantNext {
			t.Fatalf("page %d: HasNext = %v, want %v", page, p.HasNext(), wantNext)
		}
		if wantPrev := page > 1; p.HasPrevious() != wantPrev {
			t.Fatalf("page %d: HasPrevious = %v, want %v", page, p.HasPrevious(), wantPrev)
		}
		if p.Pages() != len(items) {
			t.Fatalf("page %d: Pages = %d, want %d", page, p.Pages(), len(items))
		}
	}
}

func TestEmptyInput(t *testing.T) {
	p := New([]int{}, 1, 1)

	if got := p.Page(); len(got) != 0 {
		t.Fatalf("expected empty page, got %v", got)
	}
	if p.HasNext() || p.HasPrevious() {
		t.Fatalf("empty paginator must have no neighbours")
	}
	if p.Pages() != 0 {
		t.Fatalf("Pages = %d, want 0", p.Pages())
	}
}

func TestOutOfRangePage(t *testing.T) {
	p := New([]int{1, 2}, 5, 1)
	if got := p.Page(); len(got) != 0 {
		t.Fatalf("expected empty page past the end, got %v", got)
	}
}

func TestPerPageFallback(t *testing.T) {
	p := New([]int{1, 2, 3}, 1, 0)
	if p.Pages() != 3 {
		t.Fatalf("Pages = %d, want 3 with per-page fallback of 1", p.Pages())
	}
}

func TestMultiItemPageBounds(t *testing.T) {
	p := New([]int{1, 2, 3, 4, 5}, 2, 2)

	got := p.Page()
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Fatalf("page 2 of size 2: got %v", got)
	}
	if p.Pages() != 3 {
		t.Fatalf("Pages = %d, want 3", p.Pages())
	}

	last := New([]int{1, 2, 3, 4, 5}, 3, 2)
	if got := last.Page(); len(got) != 1 || got[0] != 5 {
		t.Fatalf("last short page: got %v", got)
	}
	if last.HasNext() {
		t.Fatalf("last page must not have next")
	}
}
