package seed

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"lavkabot/internal/structs"
	"lavkabot/pkg/logger"
	bannerRepo "lavkabot/pkg/repository/postgres/banner_repo"
	branchRepo "lavkabot/pkg/repository/postgres/branch_repo"
	categoryRepo "lavkabot/pkg/repository/postgres/category_repo"
)

// Module runs the startup seeding before the bot starts polling.
var Module = fx.Invoke(Run)

var categories = []string{
	"Пельмени",
	"Вареники",
	"Напитки",
	"Соусы",
}

var bannerDescriptions = map[string]string{
	"main":         "Добро пожаловать в нашу лавку! 🥟",
	"catalog":      "Выберите категорию:",
	"cart":         "В корзине ничего нет 😢",
	"about":        "Лавка домашних пельменей.\nРаботаем каждый день с 10 до 22.",
	"payment":      "Оплата:\n💳 Картой при получении\n💵 Наличными",
	"shipping":     "Доставка:\n🚚 Курьером по городу\n🏃 Самовывоз из наших точек",
	"registration": "Зарегистрируйтесь, чтобы оформлять заказы быстрее:",
	"order":        "Ваш заказ:",
}

const (
	defaultBannerImage = "https://img.freepik.com/free-photo/traditional-russian-pelmeni-dumplings-with-meat_114579-35051.jpg"
	defaultBranchImage = "https://fastly.4sqi.net/img/general/1398x536/43700824_WZcpm4WrwgH4A7s6BBgcA42GV4lzHalVtAfA5ngwSYo.jpg"
)

// The branch table mirrors this list after every startup.
var branches = []structs.Branch{
	{
		BranchID:    "central",
		Name:        "Центральная",
		Address:     "ул. Ленина, 14",
		Phone:       "+74742555001",
		Description: "Главная точка с полным ассортиментом",
		Image:       defaultBranchImage,
	},
	{
		BranchID:    "smorodina",
		Name:        "Смородиновая",
		Address:     "ул. Петра Смородина, 13",
		Phone:       "+74742555002",
		Description: "Точка у парка, есть парковка",
		Image:       defaultBranchImage,
	},
}

type Params struct {
	fx.In
	CategoryRepo categoryRepo.Repo
	BannerRepo   bannerRepo.Repo
	BranchRepo   branchRepo.Repo
	Logger       logger.Logger
}

// Run enrolls categories and banners once and reseeds branches wholesale so
// the table always matches the static list.
func Run(p Params) error {
	ctx := p.Logger.Context(context.Background())

	if err := p.BranchRepo.ReplaceAll(ctx, branches); err != nil {
		p.Logger.Error(ctx, "seed: branches", zap.Error(err))
		return err
	}
	if err := p.CategoryRepo.CreateIfEmpty(ctx, categories); err != nil {
		p.Logger.Error(ctx, "seed: categories", zap.Error(err))
		return err
	}
	if err := p.BannerRepo.SeedDescriptions(ctx, bannerDescriptions); err != nil {
		p.Logger.Error(ctx, "seed: banners", zap.Error(err))
		return err
	}
	if err := p.BannerRepo.BackfillImages(ctx, defaultBannerImage); err != nil {
		p.Logger.Error(ctx, "seed: banner images", zap.Error(err))
		return err
	}

	p.Logger.Info(ctx, "startup seed complete",
		zap.Int("categories", len(categories)),
		zap.Int("branches", len(branches)))
	return nil
}
