package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"lavkabot/internal/structs"
	"lavkabot/pkg/cache"
	"lavkabot/pkg/logger"
	categoryRepo "lavkabot/pkg/repository/postgres/category_repo"
	productRepo "lavkabot/pkg/repository/postgres/product_repo"
)

var (
	Module = fx.Provide(New)
)

// Validation failures surfaced to the admin flow, one per prompt.
var (
	ErrNameLength       = errors.New("name must be 5 to 144 characters")
	ErrDescriptionShort = errors.New("description must be at least 3 characters")
	ErrUnknownCategory  = errors.New("category is not enrolled")
	ErrBadPrice         = errors.New("price is not a valid amount")
)

const maxPrice = 99999.99

type (
	Params struct {
		fx.In
		CategoryRepo categoryRepo.Repo
		ProductRepo  productRepo.Repo
		Cache        cache.ICache
		Logger       logger.Logger
	}

	Service interface {
		Categories(ctx context.Context) ([]structs.Category, error)
		ProductsByCategory(ctx context.Context, categoryID int64) ([]structs.Product, error)
		Product(ctx context.Context, id int64) (structs.Product, error)
		CreateProduct(ctx context.Context, req structs.CreateProduct) (structs.Product, error)
		UpdateProduct(ctx context.Context, req structs.UpdateProduct) error
		DeleteProduct(ctx context.Context, id int64) error

		ValidateName(name string) error
		ValidateDescription(description string) error
		ValidateCategory(ctx context.Context, raw string) (int64, error)
		ValidatePrice(raw string) (float64, error)
	}

	service struct {
		categoryRepo categoryRepo.Repo
		productRepo  productRepo.Repo
		cache        cache.ICache
		logger       logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		categoryRepo: p.CategoryRepo,
		productRepo:  p.ProductRepo,
		cache:        p.Cache,
		logger:       p.Logger,
	}
}

const categoriesCacheKey = "categories"

// Categories reads through a short TTL cache. The category set only changes
// on reseed, so a stale window is acceptable.
func (s *service) Categories(ctx context.Context) ([]structs.Category, error) {
	var cached []structs.Category
	if s.cache != nil {
		if err := s.cache.GetObj(ctx, categoriesCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "->categoryRepo.GetAll", zap.Error(err))
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SaveObj(ctx, categoriesCacheKey, categories); err != nil {
			s.logger.Warn(ctx, "->cache.SaveObj", zap.Error(err))
		}
	}
	return categories, nil
}

func (s *service) ProductsByCategory(ctx context.Context, categoryID int64) ([]structs.Product, error) {
	products, err := s.productRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		s.logger.Error(ctx, "->productRepo.GetByCategory", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *service) Product(ctx context.Context, id int64) (structs.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.Product{}, err
		}
		s.logger.Error(ctx, "->productRepo.GetByID", zap.Error(err))
		return structs.Product{}, err
	}
	return product, nil
}

func (s *service) CreateProduct(ctx context.Context, req structs.CreateProduct) (structs.Product, error) {
	product, err := s.productRepo.Create(ctx, req)
	if err != nil {
		s.logger.Error(ctx, "->productRepo.Create", zap.Error(err))
		return structs.Product{}, err
	}
	return product, nil
}

func (s *service) UpdateProduct(ctx context.Context, req structs.UpdateProduct) error {
	err := s.productRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return err
		}
		s.logger.Error(ctx, "->productRepo.Update", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error(ctx, "->productRepo.Delete", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) ValidateName(name string) error {
	length := utf8.RuneCountInString(name)
	if length <= 4 || length >= 145 {
		return ErrNameLength
	}
	return nil
}

func (s *service) ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) < 3 {
		return ErrDescriptionShort
	}
	return nil
}

// ValidateCategory accepts only ids of categories that actually exist. Stale
// inline keyboards can carry ids of categories deleted since render.
func (s *service) ValidateCategory(ctx context.Context, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrUnknownCategory
	}
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "->categoryRepo.GetAll", zap.Error(err))
		return 0, err
	}
	for _, cat := range categories {
		if cat.ID == id {
			return id, nil
		}
	}
	return 0, ErrUnknownCategory
}

func (s *service) ValidatePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrBadPrice
	}
	if price < 0 || price > maxPrice {
		return 0, fmt.Errorf("%w: out of range", ErrBadPrice)
	}
	return price, nil
}
