package menu

import (
	"errors"
	"strings"

	"lavkabot/pkg/tgrouter/callback"
)

// ErrUnknownScreen is returned for callback data that names no screen, for
// example tokens minted by an older build of the bot.
var ErrUnknownScreen = errors.New("unknown menu screen")

// Screen is a navigation target decoded from callback data. Each variant
// carries exactly the fields its render needs.
type Screen interface {
	screen()
}

type (
	// Home is the top-level menu.
	Home struct{}

	// Info is a static banner page (about, payment, shipping) with the
	// home keyboard.
	Info struct {
		Banner string
	}

	// Catalog lists the categories.
	Catalog struct{}

	// ProductPage shows one product of a category, one per page.
	ProductPage struct {
		Category int64
		Page     int
	}

	// CartPage shows one cart line per page, optionally after applying a
	// mutation.
	CartPage struct {
		Action    CartAction
		Page      int
		ProductID int64
	}

	// Registration is the phone-capture entry point.
	Registration struct{}

	// Checkout walks order -> pickup -> branch detail.
	Checkout struct {
		Stage  CheckoutStage
		Branch string
	}
)

func (Home) screen()         {}
func (Info) screen()         {}
func (Catalog) screen()      {}
func (ProductPage) screen()  {}
func (CartPage) screen()     {}
func (Registration) screen() {}
func (Checkout) screen()     {}

type CartAction int

const (
	CartView CartAction = iota
	CartIncrement
	CartDecrement
	CartDelete
)

type CheckoutStage int

const (
	StageOrder CheckoutStage = iota
	StagePickup
	StagePickupDetail
)

// ScreenFromCallback maps decoded callback data onto a screen variant.
// The add_to_cart action is not a screen and is handled before this point.
func ScreenFromCallback(cb callback.MenuCallback) (Screen, error) {
	switch cb.Level {
	case 0:
		if cb.MenuName == "main" {
			return Home{}, nil
		}
		return Info{Banner: cb.MenuName}, nil
	case 1:
		return Catalog{}, nil
	case 2:
		return ProductPage{Category: cb.Category, Page: cb.Page}, nil
	case 3:
		action := CartView
		switch cb.MenuName {
		case "increment":
			action = CartIncrement
		case "decrement":
			action = CartDecrement
		case "delete":
			action = CartDelete
		}
		return CartPage{Action: action, Page: cb.Page, ProductID: cb.ProductID}, nil
	case 4:
		return Registration{}, nil
	case 5:
		switch {
		case cb.MenuName == "order":
			return Checkout{Stage: StageOrder}, nil
		case cb.MenuName == "pickup":
			return Checkout{Stage: StagePickup}, nil
		case strings.HasPrefix(cb.MenuName, "pickfrom_"):
			return Checkout{
				Stage:  StagePickupDetail,
				Branch: strings.TrimPrefix(cb.MenuName, "pickfrom_"),
			}, nil
		}
		return nil, ErrUnknownScreen
	}
	return nil, ErrUnknownScreen
}
