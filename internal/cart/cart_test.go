package cart

import (
	"context"
	"testing"

	"lavkabot/internal/structs"
	"lavkabot/pkg/logger"
)

type fakeCartRepo struct {
	lines map[int64]*structs.CartLine // keyed by product id, single user
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{lines: make(map[int64]*structs.CartLine)}
}

func (f *fakeCartRepo) GetLine(_ context.Context, userID, productID int64) (structs.CartLine, error) {
	line, ok := f.lines[productID]
	if !ok {
		return structs.CartLine{}, structs.ErrNotFound
	}
	return *line, nil
}

func (f *fakeCartRepo) Insert(_ context.Context, userID, productID int64) error {
	f.lines[productID] = &structs.CartLine{UserID: userID, ProductID: productID, Quantity: 1}
	return nil
}

func (f *fakeCartRepo) SetQuantity(_ context.Context, _, productID int64, quantity int) error {
	f.lines[productID].Quantity = quantity
	return nil
}

func (f *fakeCartRepo) DeleteLine(_ context.Context, _, productID int64) error {
	delete(f.lines, productID)
	return nil
}

func (f *fakeCartRepo) ListByUser(_ context.Context, _ int64) ([]structs.CartLine, error) {
	var out []structs.CartLine
	for _, line := range f.lines {
		out = append(out, *line)
	}
	return out, nil
}

func newService(repo *fakeCartRepo) Service {
	return &service{cartRepo: repo, logger: logger.NewNop()}
}

func TestAddInsertsThenIncrements(t *testing.T) {
	repo := newFakeCartRepo()
	svc := newService(repo)
	ctx := context.Background()

	if err := svc.Add(ctx, 1, 10); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if got := repo.lines[10].Quantity; got != 1 {
		t.Fatalf("expected quantity 1 after first add, got %d", got)
	}

	if err := svc.Add(ctx, 1, 10); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if got := repo.lines[10].Quantity; got != 2 {
		t.Fatalf("expected quantity 2 after second add, got %d", got)
	}
}

func TestReduceDecrementsWhileAboveOne(t *testing.T) {
	repo := newFakeCartRepo()
	repo.lines[10] = &structs.CartLine{UserID: 1, ProductID: 10, Quantity: 3}
	svc := newService(repo)

	kept, err := svc.Reduce(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if !kept {
		t.Fatalf("expected line to survive a decrement from 3")
	}
	if got := repo.lines[10].Quantity; got != 2 {
		t.Fatalf("expected quantity 2, got %d", got)
	}
}

func TestReduceRemovesLastUnit(t *testing.T) {
	repo := newFakeCartRepo()
	repo.lines[10] = &structs.CartLine{UserID: 1, ProductID: 10, Quantity: 1}
	svc := newService(repo)

	kept, err := svc.Reduce(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if kept {
		t.Fatalf("expected line removal when reducing the last unit")
	}
	if _, ok := repo.lines[10]; ok {
		t.Fatalf("expected row to be deleted")
	}
}

func TestReduceMissingLineIsNotAnError(t *testing.T) {
	svc := newService(newFakeCartRepo())

	kept, err := svc.Reduce(context.Background(), 1, 99)
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if kept {
		t.Fatalf("expected kept=false for a missing line")
	}
}

func TestCartTotalSumsAllLines(t *testing.T) {
	lines := []structs.CartLine{
		{Quantity: 2, Product: structs.Product{Price: 10.50}},
		{Quantity: 1, Product: structs.Product{Price: 4.00}},
	}
	if got := structs.CartTotal(lines); got != 25.00 {
		t.Fatalf("expected total 25.00, got %v", got)
	}
}
