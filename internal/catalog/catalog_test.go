package catalog

import (
	"context"
	"errors"
	"testing"

	"lavkabot/internal/structs"
	"lavkabot/pkg/logger"
	categoryRepo "lavkabot/pkg/repository/postgres/category_repo"
	productRepo "lavkabot/pkg/repository/postgres/product_repo"
)

type fakeCategoryRepo struct {
	categoryRepo.Repo
	categories []structs.Category
}

func (f *fakeCategoryRepo) GetAll(_ context.Context) ([]structs.Category, error) {
	return f.categories, nil
}

type fakeProductRepo struct {
	productRepo.Repo
	writeErr error
}

func (f *fakeProductRepo) Create(_ context.Context, _ structs.CreateProduct) (structs.Product, error) {
	return structs.Product{}, f.writeErr
}

func (f *fakeProductRepo) Update(_ context.Context, _ structs.UpdateProduct) error {
	return f.writeErr
}

func newValidator(categories ...structs.Category) Service {
	return &service{
		categoryRepo: &fakeCategoryRepo{categories: categories},
		logger:       logger.NewNop(),
	}
}

func TestValidateName(t *testing.T) {
	svc := newValidator()

	cases := []struct {
		name string
		ok   bool
	}{
		{"Филе", false},
		{"Филей", true},
		{"Пельмени Классические", true},
		{"", false},
	}
	for _, tc := range cases {
		err := svc.ValidateName(tc.name)
		if tc.ok && err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrNameLength) {
			t.Errorf("ValidateName(%q) = %v, want ErrNameLength", tc.name, err)
		}
	}
}

func TestValidateNameUpperBound(t *testing.T) {
	svc := newValidator()

	long := make([]rune, 144)
	for i := range long {
		long[i] = 'п'
	}
	if err := svc.ValidateName(string(long)); err != nil {
		t.Fatalf("144 runes rejected: %v", err)
	}
	if err := svc.ValidateName(string(append(long, 'п'))); !errors.Is(err, ErrNameLength) {
		t.Fatalf("145 runes accepted, err = %v", err)
	}
}

func TestValidateDescription(t *testing.T) {
	svc := newValidator()

	if err := svc.ValidateDescription("да"); !errors.Is(err, ErrDescriptionShort) {
		t.Fatalf("two runes accepted, err = %v", err)
	}
	if err := svc.ValidateDescription("мясо"); err != nil {
		t.Fatalf("valid description rejected: %v", err)
	}
}

func TestValidateCategory(t *testing.T) {
	svc := newValidator(
		structs.Category{ID: 3, Name: "Пельмени"},
		structs.Category{ID: 7, Name: "Напитки"},
	)

	id, err := svc.ValidateCategory(context.Background(), "7")
	if err != nil || id != 7 {
		t.Fatalf("ValidateCategory(7) = %d, %v", id, err)
	}
	if _, err := svc.ValidateCategory(context.Background(), "8"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("stale id accepted, err = %v", err)
	}
	if _, err := svc.ValidateCategory(context.Background(), "Пельмени"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("non-numeric id accepted, err = %v", err)
	}
}

func TestProductWritePropagatesRepoError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := &service{
		productRepo: &fakeProductRepo{writeErr: boom},
		logger:      logger.NewNop(),
	}

	if _, err := svc.CreateProduct(context.Background(), structs.CreateProduct{}); !errors.Is(err, boom) {
		t.Fatalf("CreateProduct err = %v, want the repo error", err)
	}
	if err := svc.UpdateProduct(context.Background(), structs.UpdateProduct{}); !errors.Is(err, boom) {
		t.Fatalf("UpdateProduct err = %v, want the repo error", err)
	}
}

func TestValidatePrice(t *testing.T) {
	svc := newValidator()

	cases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"420", 420, true},
		{"420.50", 420.50, true},
		{"99999.99", 99999.99, true},
		{"100000", 0, false},
		{"-1", 0, false},
		{"дорого", 0, false},
	}
	for _, tc := range cases {
		got, err := svc.ValidatePrice(tc.raw)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Errorf("ValidatePrice(%q) = %v, %v, want %v", tc.raw, got, err, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrBadPrice) {
			t.Errorf("ValidatePrice(%q) = %v, %v, want ErrBadPrice", tc.raw, got, err)
		}
	}
}
