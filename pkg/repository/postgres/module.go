package postgres

import (
	bannerrepo "lavkabot/pkg/repository/postgres/banner_repo"
	branchrepo "lavkabot/pkg/repository/postgres/branch_repo"
	cartrepo "lavkabot/pkg/repository/postgres/cart_repo"
	categoryrepo "lavkabot/pkg/repository/postgres/category_repo"
	chatrepo "lavkabot/pkg/repository/postgres/chat_repo"
	productrepo "lavkabot/pkg/repository/postgres/product_repo"
	userrepo "lavkabot/pkg/repository/postgres/user_repo"

	"go.uber.org/fx"
)

var Module = fx.Options(
	categoryrepo.Module,
	productrepo.Module,
	bannerrepo.Module,
	cartrepo.Module,
	userrepo.Module,
	chatrepo.Module,
	branchrepo.Module,
)
