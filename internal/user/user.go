package user

import (
	"context"
	"errors"
	"regexp"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"lavkabot/internal/structs"
	"lavkabot/pkg/logger"
	chatRepo "lavkabot/pkg/repository/postgres/chat_repo"
	userRepo "lavkabot/pkg/repository/postgres/user_repo"
)

var (
	Module = fx.Provide(New)
)

var ErrBadPhone = errors.New("phone must match +7XXXXXXXXXX")

var phonePattern = regexp.MustCompile(`^\+7\d{10}$`)

type (
	Params struct {
		fx.In
		UserRepo userRepo.Repo
		ChatRepo chatRepo.Repo
		Logger   logger.Logger
	}

	Service interface {
		// Ensure records the user if unseen. Existing rows are kept as is,
		// a duplicate insert is not an error.
		Ensure(ctx context.Context, req structs.UpsertUser) error
		// Register stores the user together with a phone number, updating
		// the phone when the user already exists. Manual input is validated
		// by the caller, contact cards arrive pre-verified by Telegram.
		Register(ctx context.Context, req structs.UpsertUser) error
		ValidatePhone(phone string) error
		SaveChat(ctx context.Context, chatID int64) error
	}
	service struct {
		userRepo userRepo.Repo
		chatRepo chatRepo.Repo
		logger   logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		userRepo: p.UserRepo,
		chatRepo: p.ChatRepo,
		logger:   p.Logger,
	}
}

func (s *service) Ensure(ctx context.Context, req structs.UpsertUser) error {
	err := s.userRepo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, structs.ErrUniqueViolation) {
			return nil
		}
		s.logger.Error(ctx, "->userRepo.Create", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Register(ctx context.Context, req structs.UpsertUser) error {
	err := s.userRepo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, structs.ErrUniqueViolation) {
			if err := s.userRepo.SetPhone(ctx, req.UserID, req.Phone); err != nil {
				s.logger.Error(ctx, "->userRepo.SetPhone", zap.Error(err))
				return err
			}
			return nil
		}
		s.logger.Error(ctx, "->userRepo.Create", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrBadPhone
	}
	return nil
}

func (s *service) SaveChat(ctx context.Context, chatID int64) error {
	err := s.chatRepo.Save(ctx, chatID)
	if err != nil {
		s.logger.Error(ctx, "->chatRepo.Save", zap.Error(err))
		return err
	}
	return nil
}
