package menu

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"lavkabot/internal/banner"
	"lavkabot/internal/branch"
	"lavkabot/internal/cart"
	"lavkabot/internal/catalog"
	"lavkabot/internal/keyboards"
	"lavkabot/internal/structs"
	"lavkabot/internal/texts"
	"lavkabot/pkg/logger"
	"lavkabot/pkg/paginator"
	"lavkabot/pkg/utils"
)

var (
	Module = fx.Provide(New)
)

// View is a rendered screen: a photo with a caption plus exactly one kind of
// keyboard. Registration is the only screen that uses a reply keyboard.
type View struct {
	Photo   string
	Caption string
	Inline  *tgbotapi.InlineKeyboardMarkup
	Reply   *tgbotapi.ReplyKeyboardMarkup
}

type (
	Params struct {
		fx.In
		Banner  banner.Service
		Catalog catalog.Service
		Cart    cart.Service
		Branch  branch.Service
		Logger  logger.Logger
	}

	Service interface {
		// Render resolves a screen into a view. Cart screens mutate the
		// cart first, then render from the fresh state.
		Render(ctx context.Context, screen Screen, userID int64) (View, error)
	}

	service struct {
		banner  banner.Service
		catalog catalog.Service
		cart    cart.Service
		branch  branch.Service
		logger  logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		banner:  p.Banner,
		catalog: p.Catalog,
		cart:    p.Cart,
		branch:  p.Branch,
		logger:  p.Logger,
	}
}

func (s *service) Render(ctx context.Context, screen Screen, userID int64) (View, error) {
	switch scr := screen.(type) {
	case Home:
		return s.renderBanner(ctx, "main", keyboards.MainMenu())
	case Info:
		return s.renderBanner(ctx, scr.Banner, keyboards.MainMenu())
	case Catalog:
		return s.renderCatalog(ctx)
	case ProductPage:
		return s.renderProducts(ctx, scr)
	case CartPage:
		return s.renderCart(ctx, scr, userID)
	case Registration:
		return s.renderRegistration(ctx)
	case Checkout:
		return s.renderCheckout(ctx, scr, userID)
	}
	return View{}, ErrUnknownScreen
}

func (s *service) renderBanner(ctx context.Context, name string, markup tgbotapi.InlineKeyboardMarkup) (View, error) {
	bnr, err := s.banner.Get(ctx, name)
	if err != nil {
		return View{}, err
	}
	return View{
		Photo:   bnr.Image,
		Caption: bnr.Description,
		Inline:  &markup,
	}, nil
}

func (s *service) renderCatalog(ctx context.Context) (View, error) {
	bnr, err := s.banner.Get(ctx, "catalog")
	if err != nil {
		return View{}, err
	}
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return View{}, err
	}
	markup := keyboards.Catalog(categories)
	return View{
		Photo:   bnr.Image,
		Caption: bnr.Description,
		Inline:  &markup,
	}, nil
}

func (s *service) renderProducts(ctx context.Context, scr ProductPage) (View, error) {
	products, err := s.catalog.ProductsByCategory(ctx, scr.Category)
	if err != nil {
		return View{}, err
	}
	if len(products) == 0 {
		// The category emptied out under the open keyboard.
		return s.renderCatalog(ctx)
	}

	page := clampPage(scr.Page, len(products))
	pager := paginator.New(products, page, 1)
	product := pager.Page()[0]

	caption := fmt.Sprintf(texts.ProductCaption,
		product.Name,
		product.Description,
		utils.FPrice(product.Price),
		pager.PageNumber(),
		pager.Pages(),
	)
	markup := keyboards.Product(scr.Category, page, pager.HasPrevious(), pager.HasNext(), product.ID)
	return View{
		Photo:   product.Image,
		Caption: caption,
		Inline:  &markup,
	}, nil
}

func (s *service) renderCart(ctx context.Context, scr CartPage, userID int64) (View, error) {
	page := scr.Page

	switch scr.Action {
	case CartIncrement:
		if err := s.cart.Add(ctx, userID, scr.ProductID); err != nil {
			return View{}, err
		}
	case CartDecrement:
		kept, err := s.cart.Reduce(ctx, userID, scr.ProductID)
		if err != nil {
			return View{}, err
		}
		if !kept && page > 1 {
			page--
		}
	case CartDelete:
		if err := s.cart.Remove(ctx, userID, scr.ProductID); err != nil {
			return View{}, err
		}
		if page > 1 {
			page--
		}
	}

	lines, err := s.cart.List(ctx, userID)
	if err != nil {
		return View{}, err
	}
	if len(lines) == 0 {
		bnr, err := s.banner.Get(ctx, "cart")
		if err != nil {
			return View{}, err
		}
		markup := keyboards.EmptyCart()
		return View{
			Photo:   bnr.Image,
			Caption: "<b>" + bnr.Description + "</b>",
			Inline:  &markup,
		}, nil
	}

	page = clampPage(page, len(lines))
	pager := paginator.New(lines, page, 1)
	line := pager.Page()[0]

	caption := fmt.Sprintf(texts.CartLineCaption,
		line.Product.Name,
		utils.FPrice(line.Product.Price),
		line.Quantity,
		utils.FPrice(line.LineTotal()),
		pager.PageNumber(),
		pager.Pages(),
		utils.FPrice(structs.CartTotal(lines)),
	)
	markup := keyboards.Cart(page, pager.HasPrevious(), pager.HasNext(), line.Product.ID)
	return View{
		Photo:   line.Product.Image,
		Caption: caption,
		Inline:  &markup,
	}, nil
}

func (s *service) renderRegistration(ctx context.Context) (View, error) {
	bnr, err := s.banner.Get(ctx, "registration")
	if err != nil {
		return View{}, err
	}
	markup := keyboards.Registration()
	return View{
		Photo:   bnr.Image,
		Caption: bnr.Description,
		Reply:   &markup,
	}, nil
}

func (s *service) renderCheckout(ctx context.Context, scr Checkout, userID int64) (View, error) {
	switch scr.Stage {
	case StageOrder:
		return s.renderReceipt(ctx, userID)
	case StagePickup:
		bnr, err := s.banner.Get(ctx, "order")
		if err != nil {
			return View{}, err
		}
		branches, err := s.branch.List(ctx)
		if err != nil {
			return View{}, err
		}
		markup := keyboards.Pickup(branches)
		return View{
			Photo:   bnr.Image,
			Caption: texts.ChoosePickup,
			Inline:  &markup,
		}, nil
	case StagePickupDetail:
		br, err := s.branch.GetByName(ctx, scr.Branch)
		if err != nil {
			return View{}, err
		}
		markup := keyboards.PickupDetail()
		return View{
			Photo:   br.Image,
			Caption: fmt.Sprintf(texts.BranchCaption, br.Name, br.Address, br.Description),
			Inline:  &markup,
		}, nil
	}
	return View{}, ErrUnknownScreen
}

func (s *service) renderReceipt(ctx context.Context, userID int64) (View, error) {
	bnr, err := s.banner.Get(ctx, "order")
	if err != nil {
		return View{}, err
	}
	lines, err := s.cart.List(ctx, userID)
	if err != nil {
		return View{}, err
	}

	var caption strings.Builder
	for _, line := range lines {
		caption.WriteString(fmt.Sprintf(texts.OrderLine,
			line.Product.Name, line.Quantity, utils.FPrice(line.LineTotal())))
	}
	caption.WriteString(fmt.Sprintf(texts.OrderTotal, utils.FPrice(structs.CartTotal(lines))))

	s.logger.Debug(ctx, "receipt rendered",
		zap.Int64("user_id", userID), zap.Int("lines", len(lines)))

	markup := keyboards.Order()
	return View{
		Photo:   bnr.Image,
		Caption: caption.String(),
		Inline:  &markup,
	}, nil
}

func clampPage(page, items int) int {
	if page < 1 {
		return 1
	}
	if page > items {
		return items
	}
	return page
}
