package branch

import (
	"context"
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"lavkabot/internal/structs"
	"lavkabot/pkg/logger"
	branchRepo "lavkabot/pkg/repository/postgres/branch_repo"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		BranchRepo branchRepo.Repo
		Logger     logger.Logger
	}

	Service interface {
		List(ctx context.Context) ([]structs.Branch, error)
		GetByName(ctx context.Context, name string) (structs.Branch, error)
	}
	service struct {
		branchRepo branchRepo.Repo
		logger     logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		branchRepo: p.BranchRepo,
		logger:     p.Logger,
	}
}

func (s *service) List(ctx context.Context) ([]structs.Branch, error) {
	branches, err := s.branchRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "->branchRepo.GetAll", zap.Error(err))
		return nil, err
	}
	return branches, nil
}

func (s *service) GetByName(ctx context.Context, name string) (structs.Branch, error) {
	branch, err := s.branchRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return structs.Branch{}, err
		}
		s.logger.Error(ctx, "->branchRepo.GetByName", zap.Error(err))
		return structs.Branch{}, err
	}
	return branch, nil
}
