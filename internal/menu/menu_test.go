package menu

import (
	"context"
	"strings"
	"testing"

	"lavkabot/internal/banner"
	"lavkabot/internal/branch"
	"lavkabot/internal/cart"
	"lavkabot/internal/catalog"
	"lavkabot/internal/structs"
	"lavkabot/pkg/logger"
)

type fakeBanner struct {
	banner.Service
	banners map[string]structs.Banner
}

func (f *fakeBanner) Get(_ context.Context, name string) (structs.Banner, error) {
	b, ok := f.banners[name]
	if !ok {
		return structs.Banner{}, structs.ErrNotFound
	}
	return b, nil
}

type fakeCatalog struct {
	catalog.Service
	categories []structs.Category
	products   map[int64][]structs.Product
}

func (f *fakeCatalog) Categories(_ context.Context) ([]structs.Category, error) {
	return f.categories, nil
}

func (f *fakeCatalog) ProductsByCategory(_ context.Context, categoryID int64) ([]structs.Product, error) {
	return f.products[categoryID], nil
}

type fakeCart struct {
	cart.Service
	lines []structs.CartLine
}

func (f *fakeCart) Add(_ context.Context, _, productID int64) error {
	for i := range f.lines {
		if f.lines[i].ProductID == productID {
			f.lines[i].Quantity++
			return nil
		}
	}
	f.lines = append(f.lines, structs.CartLine{ProductID: productID, Quantity: 1})
	return nil
}

func (f *fakeCart) Reduce(_ context.Context, _, productID int64) (bool, error) {
	for i := range f.lines {
		if f.lines[i].ProductID == productID {
			if f.lines[i].Quantity > 1 {
				f.lines[i].Quantity--
				return true, nil
			}
			f.lines = append(f.lines[:i], f.lines[i+1:]...)
			return false, nil
		}
	}
	return false, nil
}

func (f *fakeCart) Remove(_ context.Context, _, productID int64) error {
	for i := range f.lines {
		if f.lines[i].ProductID == productID {
			f.lines = append(f.lines[:i], f.lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCart) List(_ context.Context, _ int64) ([]structs.CartLine, error) {
	out := make([]structs.CartLine, len(f.lines))
	copy(out, f.lines)
	return out, nil
}

type fakeBranch struct {
	branch.Service
	branches []structs.Branch
}

func (f *fakeBranch) List(_ context.Context) ([]structs.Branch, error) {
	return f.branches, nil
}

func (f *fakeBranch) GetByName(_ context.Context, name string) (structs.Branch, error) {
	for _, b := range f.branches {
		if b.Name == name {
			return b, nil
		}
	}
	return structs.Branch{}, structs.ErrNotFound
}

func allBanners() map[string]structs.Banner {
	names := []string{"main", "catalog", "cart", "about", "payment", "shipping", "registration", "order"}
	banners := make(map[string]structs.Banner, len(names))
	for _, name := range names {
		banners[name] = structs.Banner{Name: name, Image: "img-" + name, Description: "desc-" + name}
	}
	return banners
}

func newResolver(carts *fakeCart) Service {
	return &service{
		banner: &fakeBanner{banners: allBanners()},
		catalog: &fakeCatalog{
			categories: []structs.Category{{ID: 1, Name: "Пельмени"}, {ID: 2, Name: "Напитки"}},
			products: map[int64][]structs.Product{
				1: {
					{ID: 10, Name: "Классические", Description: "Свинина и говядина", Price: 350, Image: "img-p10"},
					{ID: 11, Name: "С грибами", Description: "Лесные грибы", Price: 420, Image: "img-p11"},
				},
			},
		},
		cart: carts,
		branch: &fakeBranch{branches: []structs.Branch{
			{Name: "Центральная", Address: "ул. Ленина, 14", Description: "Главная точка", Image: "img-br"},
		}},
		logger: logger.NewNop(),
	}
}

func TestRenderHomeUsesMainBanner(t *testing.T) {
	svc := newResolver(&fakeCart{})

	view, err := svc.Render(context.Background(), Home{}, 1)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if view.Photo != "img-main" || view.Caption != "desc-main" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Inline == nil || view.Reply != nil {
		t.Fatalf("home must carry an inline keyboard only")
	}
}

func TestRenderProductPageFormatsPriceAndPosition(t *testing.T) {
	svc := newResolver(&fakeCart{})

	view, err := svc.Render(context.Background(), ProductPage{Category: 1, Page: 2}, 1)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if view.Photo != "img-p11" {
		t.Fatalf("expected second product photo, got %q", view.Photo)
	}
	if !strings.Contains(view.Caption, "420.00") {
		t.Fatalf("expected price with 2 decimals in caption: %q", view.Caption)
	}
	if !strings.Contains(view.Caption, "Товар 2 из 2") {
		t.Fatalf("expected pager position in caption: %q", view.Caption)
	}
}

func TestRenderProductPageClampsOutOfRange(t *testing.T) {
	svc := newResolver(&fakeCart{})

	view, err := svc.Render(context.Background(), ProductPage{Category: 1, Page: 99}, 1)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if view.Photo != "img-p11" {
		t.Fatalf("expected clamp to last page, got photo %q", view.Photo)
	}
}

func TestRenderEmptyCategoryFallsBackToCatalog(t *testing.T) {
	svc := newResolver(&fakeCart{})

	view, err := svc.Render(context.Background(), ProductPage{Category: 2, Page: 1}, 1)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if view.Photo != "img-catalog" {
		t.Fatalf("expected catalog banner for empty category, got %q", view.Photo)
	}
}

func TestRenderCartTotalSpansAllLines(t *testing.T) {
	carts := &fakeCart{lines: []structs.CartLine{
		{ProductID: 10, Quantity: 2, Product: structs.Product{ID: 10, Name: "Классические", Price: 10.50, Image: "img-p10"}},
		{ProductID: 11, Quantity: 1, Product: structs.Product{ID: 11, Name: "С грибами", Price: 4.00, Image: "img-p11"}},
	}}
	svc := newResolver(carts)

	view, err := svc.Render(context.Background(), CartPage{Action: CartView, Page: 1}, 1)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(view.Caption, "21.00") {
		t.Fatalf("expected line subtotal 21.00 in caption: %q", view.Caption)
	}
	if !strings.Contains(view.Caption, "25.00") {
		t.Fatalf("expected cart total 25.00 in caption: %q", view.Caption)
	}
}

func TestRenderCartDecrementRewindsPage(t *testing.T) {
	carts := &fakeCart{lines: []structs.CartLine{
		{ProductID: 10, Quantity: 3, Product: structs.Product{ID: 10, Price: 5, Image: "a"}},
		{ProductID: 11, Quantity: 1, Product: structs.Product{ID: 11, Price: 5, Image: "b"}},
	}}
	svc := newResolver(carts)

	// Reducing the last unit on page 2 removes the line and rewinds to page 1.
	view, err := svc.Render(context.Background(), CartPage{Action: CartDecrement, Page: 2, ProductID: 11}, 1)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if view.Photo != "a" {
		t.Fatalf("expected rewind to first line, got photo %q", view.Photo)
	}
	if !strings.Contains(view.Caption, "Товар 1 из 1") {
		t.Fatalf("expected single remaining line: %q", view.Caption)
	}
}

func TestRenderCartDecrementKeepsPageWhileQuantityRemains(t *testing.T) {
	carts := &fakeCart{lines: []structs.CartLine{
		{ProductID: 10, Quantity: 1, Product: structs.Product{ID: 10, Price: 5, Image: "a"}},
		{ProductID: 11, Quantity: 2, Product: structs.Product{ID: 11, Price: 5, Image: "b"}},
	}}
	svc := newResolver(carts)

	view, err := svc.Render(context.Background(), CartPage{Action: CartDecrement, Page: 2, ProductID: 11}, 1)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if view.Photo != "b" {
		t.Fatalf("expected to stay on page 2, got photo %q", view.Photo)
	}
}

func TestRenderEmptyCartShowsBannerWithoutPager(t *testing.T) {
	carts := &fakeCart{lines: []structs.CartLine{
		{ProductID: 10, Quantity: 1, Product: structs.Product{ID: 10, Price: 5, Image: "a"}},
	}}
	svc := newResolver(carts)

	view, err := svc.Render(context.Background(), CartPage{Action: CartDelete, Page: 1, ProductID: 10}, 1)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if view.Photo != "img-cart" {
		t.Fatalf("expected cart banner, got %q", view.Photo)
	}
	if view.Inline == nil || len(view.Inline.InlineKeyboard) != 1 {
		t.Fatalf("empty cart must render a single home row")
	}
}

func TestRenderReceiptListsEveryLine(t *testing.T) {
	carts := &fakeCart{lines: []structs.CartLine{
		{ProductID: 10, Quantity: 2, Product: structs.Product{Name: "Классические", Price: 350}},
		{ProductID: 11, Quantity: 1, Product: structs.Product{Name: "С грибами", Price: 420}},
	}}
	svc := newResolver(carts)

	view, err := svc.Render(context.Background(), Checkout{Stage: StageOrder}, 1)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	for _, want := range []string{"Классические 2шт. 700.00", "С грибами 1шт. 420.00", "1120.00"} {
		if !strings.Contains(view.Caption, want) {
			t.Fatalf("receipt missing %q: %q", want, view.Caption)
		}
	}
}

func TestRenderPickupDetail(t *testing.T) {
	svc := newResolver(&fakeCart{})

	view, err := svc.Render(context.Background(), Checkout{Stage: StagePickupDetail, Branch: "Центральная"}, 1)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if view.Photo != "img-br" {
		t.Fatalf("expected branch image, got %q", view.Photo)
	}
	if !strings.Contains(view.Caption, "ул. Ленина, 14") {
		t.Fatalf("expected branch address in caption: %q", view.Caption)
	}
}

func TestRenderRegistrationUsesReplyKeyboard(t *testing.T) {
	svc := newResolver(&fakeCart{})

	view, err := svc.Render(context.Background(), Registration{}, 1)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if view.Reply == nil || view.Inline != nil {
		t.Fatalf("registration must carry a reply keyboard only")
	}
}
