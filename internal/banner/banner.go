package banner

import (
	"context"
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"lavkabot/internal/structs"
	"lavkabot/pkg/cache"
	"lavkabot/pkg/logger"
	bannerRepo "lavkabot/pkg/repository/postgres/banner_repo"
)

var (
	Module = fx.Provide(New)
)

var ErrUnknownBanner = errors.New("unknown banner name")

type (
	Params struct {
		fx.In
		BannerRepo bannerRepo.Repo
		Cache      cache.ICache
		Logger     logger.Logger
	}

	Service interface {
		Get(ctx context.Context, name string) (structs.Banner, error)
		Names(ctx context.Context) ([]string, error)
		SetImage(ctx context.Context, name, image string) error
	}
	service struct {
		bannerRepo bannerRepo.Repo
		cache      cache.ICache
		logger     logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		bannerRepo: p.BannerRepo,
		cache:      p.Cache,
		logger:     p.Logger,
	}
}

func (s *service) Get(ctx context.Context, name string) (structs.Banner, error) {
	var banner structs.Banner
	if err := s.cache.GetObj(ctx, "banner."+name, &banner); err == nil {
		return banner, nil
	}

	banner, err := s.bannerRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.Banner{}, err
		}
		s.logger.Error(ctx, "->bannerRepo.GetByName", zap.Error(err))
		return structs.Banner{}, err
	}
	if err := s.cache.SaveObj(ctx, "banner."+name, banner); err != nil {
		s.logger.Warn(ctx, "->cache.SaveObj", zap.Error(err))
	}
	return banner, nil
}

func (s *service) Names(ctx context.Context) ([]string, error) {
	banners, err := s.bannerRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "->bannerRepo.GetAll", zap.Error(err))
		return nil, err
	}
	names := make([]string, 0, len(banners))
	for _, b := range banners {
		names = append(names, b.Name)
	}
	return names, nil
}

// SetImage accepts only enrolled banner names and drops the cached copy so
// the next render picks the fresh image.
func (s *service) SetImage(ctx context.Context, name, image string) error {
	names, err := s.Names(ctx)
	if err != nil {
		return err
	}
	known := false
	for _, n := range names {
		if n == name {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknownBanner
	}
	if err := s.bannerRepo.UpdateImage(ctx, name, image); err != nil {
		s.logger.Error(ctx, "->bannerRepo.UpdateImage", zap.Error(err))
		return err
	}
	if err := s.cache.Delete(ctx, "banner."+name); err != nil && !errors.Is(err, cache.ErrNotFound) {
		s.logger.Warn(ctx, "->cache.Delete", zap.Error(err))
	}
	return nil
}
