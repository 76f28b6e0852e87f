package keyboards

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lavkabot/internal/structs"
	"lavkabot/internal/texts"
	"lavkabot/pkg/tgrouter/callback"
)

// Button is a label paired with raw callback data. Slices keep the order the
// buttons appear in, maps would shuffle them between renders.
type Button struct {
	Text string
	Data string
}

// Rows lays buttons out left to right, perRow per line.
func Rows(buttons []Button, perRow int) tgbotapi.InlineKeyboardMarkup {
	if perRow <= 0 {
		perRow = 2
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, b := range buttons {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func menuData(level int, name string) string {
	return callback.MenuCallback{Level: level, MenuName: name}.Pack()
}

func MainMenu() tgbotapi.InlineKeyboardMarkup {
	return Rows([]Button{
		{texts.CatalogButton, menuData(1, "catalog")},
		{texts.CartButton, menuData(3, "cart")},
		{texts.AboutButton, menuData(0, "about")},
		{texts.PaymentButton, menuData(0, "payment")},
		{texts.ShippingButton, menuData(0, "shipping")},
		{texts.RegistrationButton, menuData(4, "registration")},
	}, 2)
}

func Catalog(categories []structs.Category) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]Button, 0, len(categories)+2)
	for _, cat := range categories {
		buttons = append(buttons, Button{
			Text: cat.Name,
			Data: callback.MenuCallback{Level: 2, MenuName: cat.Name, Category: cat.ID}.Pack(),
		})
	}
	buttons = append(buttons,
		Button{texts.BackButton, menuData(0, "main")},
		Button{texts.ToCartButton, menuData(3, "cart")},
	)
	return Rows(buttons, 2)
}

func Product(category int64, page int, hasPrev, hasNext bool, productID int64) tgbotapi.InlineKeyboardMarkup {
	buttons := []Button{
		{texts.CartButton, menuData(3, "cart")},
		{texts.BackButton, menuData(1, "catalog")},
		{texts.BuyButton, callback.MenuCallback{Level: 2, MenuName: "add_to_cart", ProductID: productID}.Pack()},
	}
	markup := Rows(buttons, 2)

	var pager []tgbotapi.InlineKeyboardButton
	if hasPrev {
		pager = append(pager, tgbotapi.NewInlineKeyboardButtonData(texts.PrevPageButton,
			callback.MenuCallback{Level: 2, MenuName: "previous", Category: category, Page: page - 1}.Pack()))
	}
	if hasNext {
		pager = append(pager, tgbotapi.NewInlineKeyboardButtonData(texts.NextPageButton,
			callback.MenuCallback{Level: 2, MenuName: "next", Category: category, Page: page + 1}.Pack()))
	}
	if len(pager) > 0 {
		markup.InlineKeyboard = append(markup.InlineKeyboard, pager)
	}
	return markup
}

func Cart(page int, hasPrev, hasNext bool, productID int64) tgbotapi.InlineKeyboardMarkup {
	markup := Rows([]Button{
		{texts.IncrementButton, callback.MenuCallback{Level: 3, MenuName: "increment", ProductID: productID, Page: page}.Pack()},
		{texts.DecrementButton, callback.MenuCallback{Level: 3, MenuName: "decrement", ProductID: productID, Page: page}.Pack()},
		{texts.DeleteButton, callback.MenuCallback{Level: 3, MenuName: "delete", ProductID: productID, Page: page}.Pack()},
	}, 3)

	var pager []tgbotapi.InlineKeyboardButton
	if hasPrev {
		pager = append(pager, tgbotapi.NewInlineKeyboardButtonData(texts.PrevPageButton,
			callback.MenuCallback{Level: 3, MenuName: "previous", Page: page - 1}.Pack()))
	}
	if hasNext {
		pager = append(pager, tgbotapi.NewInlineKeyboardButtonData(texts.NextPageButton,
			callback.MenuCallback{Level: 3, MenuName: "next", Page: page + 1}.Pack()))
	}
	if len(pager) > 0 {
		markup.InlineKeyboard = append(markup.InlineKeyboard, pager)
	}
	markup.InlineKeyboard = append(markup.InlineKeyboard, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(texts.HomeButton, menuData(0, "main")),
		tgbotapi.NewInlineKeyboardButtonData(texts.BuyButton, menuData(5, "order")),
	})
	return markup
}

func EmptyCart() tgbotapi.InlineKeyboardMarkup {
	return Rows([]Button{{texts.HomeButton, menuData(0, "main")}}, 1)
}

func Order() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(texts.PickupButton, menuData(5, "pickup")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(texts.DeliveryButton, "Delivery_address"),
			tgbotapi.NewInlineKeyboardButtonData(texts.BackButton, menuData(3, "cart")),
		),
	)
}

func Pickup(branches []structs.Branch) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]Button, 0, len(branches)+1)
	for _, branch := range branches {
		buttons = append(buttons, Button{
			Text: fmt.Sprintf("%s(%s)", branch.Name, branch.Address),
			Data: menuData(5, "pickfrom_"+branch.Name),
		})
	}
	buttons = append(buttons, Button{texts.BackButton, menuData(5, "order")})
	return Rows(buttons, 2)
}

func PickupDetail() tgbotapi.InlineKeyboardMarkup {
	return Rows([]Button{
		{texts.BackButton, menuData(5, "pickup")},
		{texts.PayButton, menuData(0, "payment")},
	}, 2)
}

// Reply builds a reply keyboard. contactIdx and locationIdx mark which button,
// by position, requests the contact card or location; pass -1 for none.
func Reply(buttons []string, contactIdx, locationIdx, perRow int, placeholder string) tgbotapi.ReplyKeyboardMarkup {
	if perRow <= 0 {
		perRow = 2
	}
	var rows [][]tgbotapi.KeyboardButton
	var row []tgbotapi.KeyboardButton
	for i, text := range buttons {
		switch i {
		case contactIdx:
			row = append(row, tgbotapi.NewKeyboardButtonContact(text))
		case locationIdx:
			row = append(row, tgbotapi.NewKeyboardButtonLocation(text))
		default:
			row = append(row, tgbotapi.NewKeyboardButton(text))
		}
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.ResizeKeyboard = true
	if placeholder != "" {
		keyboard.InputFieldPlaceholder = placeholder
	}
	return keyboard
}

func Registration() tgbotapi.ReplyKeyboardMarkup {
	return Reply([]string{
		texts.ShareContactButton,
		texts.ManualPhoneButton,
		texts.BackButton,
	}, 0, -1, 2, "")
}

func ConfirmPhone() tgbotapi.ReplyKeyboardMarkup {
	return Reply([]string{
		texts.BackButton,
		texts.ManualPhoneButton,
		texts.ConfirmPhoneButton,
	}, -1, -1, 2, "")
}

func ContactRetry() tgbotapi.ReplyKeyboardMarkup {
	return Reply([]string{
		texts.BackButton,
		texts.ManualPhoneButton,
	}, -1, -1, 2, "")
}

func AdminPanel() tgbotapi.ReplyKeyboardMarkup {
	return Reply([]string{
		texts.AddProductButton,
		texts.AssortmentButton,
		texts.ChangeBannerButton,
		texts.BroadcastButton,
	}, -1, -1, 2, texts.AdminPlaceholder)
}
