package cart

import (
	"context"
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"lavkabot/internal/structs"
	"lavkabot/pkg/logger"
	cartRepo "lavkabot/pkg/repository/postgres/cart_repo"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		CartRepo cartRepo.Repo
		Logger   logger.Logger
	}

	Service interface {
		Add(ctx context.Context, userID, productID int64) error
		// Reduce lowers the quantity by one. It reports whether the line
		// survived: reducing the last unit deletes the row and returns false.
		Reduce(ctx context.Context, userID, productID int64) (bool, error)
		Remove(ctx context.Context, userID, productID int64) error
		List(ctx context.Context, userID int64) ([]structs.CartLine, error)
	}
	service struct {
		cartRepo cartRepo.Repo
		logger   logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		cartRepo: p.CartRepo,
		logger:   p.Logger,
	}
}

func (s *service) Add(ctx context.Context, userID, productID int64) error {
	line, err := s.cartRepo.GetLine(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			if err := s.cartRepo.Insert(ctx, userID, productID); err != nil {
				s.logger.Error(ctx, "->cartRepo.Insert", zap.Error(err))
				return err
			}
			return nil
		}
		s.logger.Error(ctx, "->cartRepo.GetLine", zap.Error(err))
		return err
	}
	if err := s.cartRepo.SetQuantity(ctx, userID, productID, line.Quantity+1); err != nil {
		s.logger.Error(ctx, "->cartRepo.SetQuantity", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Reduce(ctx context.Context, userID, productID int64) (bool, error) {
	line, err := s.cartRepo.GetLine(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			return false, nil
		}
		s.logger.Error(ctx, "->cartRepo.GetLine", zap.Error(err))
		return false, err
	}
	if line.Quantity > 1 {
		if err := s.cartRepo.SetQuantity(ctx, userID, productID, line.Quantity-1); err != nil {
			s.logger.Error(ctx, "->cartRepo.SetQuantity", zap.Error(err))
			return false, err
		}
		return true, nil
	}
	if err := s.cartRepo.DeleteLine(ctx, userID, productID); err != nil {
		s.logger.Error(ctx, "->cartRepo.DeleteLine", zap.Error(err))
		return false, err
	}
	return false, nil
}

func (s *service) Remove(ctx context.Context, userID, productID int64) error {
	err := s.cartRepo.DeleteLine(ctx, userID, productID)
	if err != nil {
		s.logger.Error(ctx, "->cartRepo.DeleteLine", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, userID int64) ([]structs.CartLine, error) {
	lines, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "->cartRepo.ListByUser", zap.Error(err))
		return nil, err
	}
	return lines, nil
}
