package admin

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"

	menucmd "lavkabot/apps/bot/commands/menu"
	"lavkabot/internal/banner"
	"lavkabot/internal/broadcast"
	"lavkabot/internal/catalog"
	"lavkabot/internal/flow"
	"lavkabot/internal/keyboards"
	"lavkabot/internal/structs"
	"lavkabot/internal/texts"
	"lavkabot/pkg/logger"
	"lavkabot/pkg/tgrouter"
	"lavkabot/pkg/utils"
)

var Module = fx.Provide(New)

const (
	ProductPrefix    = "product."
	StateName        = "product.name"
	StateDescription = "product.description"
	StateCategory    = "product.category"
	StatePrice       = "product.price"
	StateImage       = "product.image"

	StateBannerImage   = "banner.image"
	StateBroadcastText = "broadcast.text"
)

var productSteps = flow.New(
	flow.Step{Name: StateName, Reprompt: texts.AskProductNameAgain},
	flow.Step{Name: StateDescription, Reprompt: texts.AskDescriptionAgain},
	flow.Step{Name: StateCategory, Reprompt: texts.AskCategoryAgain},
	flow.Step{Name: StatePrice, Reprompt: texts.AskPriceAgain},
	flow.Step{Name: StateImage, Reprompt: texts.AskImage},
)

type Params struct {
	fx.In
	Logger       logger.Logger
	CatalogSvc   catalog.Service
	BannerSvc    banner.Service
	BroadcastSvc broadcast.Service
}

type Commands struct {
	logger       logger.Logger
	catalogSvc   catalog.Service
	bannerSvc    banner.Service
	broadcastSvc broadcast.Service
}

func New(p Params) Commands {
	return Commands{
		logger:       p.Logger,
		catalogSvc:   p.CatalogSvc,
		bannerSvc:    p.BannerSvc,
		broadcastSvc: p.BroadcastSvc,
	}
}

// Panel shows the admin reply keyboard.
func (c *Commands) Panel(ctx *tgrouter.Ctx) {
	msg := tgbotapi.NewMessage(ctx.Update().FromChat().ID, texts.AdminWhatToDo)
	msg.ReplyMarkup = keyboards.AdminPanel()
	_, _ = ctx.Bot().Send(msg)
}

// Assortment lists categories to browse the stock.
func (c *Commands) Assortment(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID

	categories, err := c.catalogSvc.Categories(ctx.Context)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to list categories", zap.Error(err))
		return
	}
	buttons := make([]keyboards.Button, 0, len(categories))
	for _, cat := range categories {
		buttons = append(buttons, keyboards.Button{
			Text: cat.Name,
			Data: fmt.Sprintf("category_%d", cat.ID),
		})
	}
	msg := tgbotapi.NewMessage(chatID, texts.ChooseCategory)
	msg.ReplyMarkup = keyboards.Rows(buttons, 2)
	_, _ = ctx.Bot().Send(msg)
}

// ByCategory sends every product of the picked category as its own card
// with delete and change buttons.
func (c *Commands) ByCategory(ctx *tgrouter.Ctx) {
	cq := ctx.Update().CallbackQuery
	chatID := cq.Message.Chat.ID
	categoryID := cast.ToInt64(strings.TrimPrefix(cq.Data, "category_"))

	products, err := c.catalogSvc.ProductsByCategory(ctx.Context, categoryID)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to list products", zap.Error(err))
		menucmd.AnswerCallback(ctx, "")
		return
	}

	for _, product := range products {
		card := tgbotapi.NewPhoto(chatID, fileRef(product.Image))
		card.Caption = fmt.Sprintf("<strong>%s</strong>\n\n%s\nСтоимость: %s",
			product.Name, product.Description, utils.FPrice(product.Price))
		card.ParseMode = tgbotapi.ModeHTML
		card.ReplyMarkup = keyboards.Rows([]keyboards.Button{
			{Text: texts.AdminDeleteButton, Data: fmt.Sprintf("delete_%d", product.ID)},
			{Text: texts.AdminChangeButton, Data: fmt.Sprintf("change_%d", product.ID)},
		}, 2)
		_, _ = ctx.Bot().Send(card)
	}
	menucmd.AnswerCallback(ctx, "")
	_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.AssortmentDone))
}

// Delete removes a product from the delete button on its card.
func (c *Commands) Delete(ctx *tgrouter.Ctx) {
	cq := ctx.Update().CallbackQuery
	productID := cast.ToInt64(strings.TrimPrefix(cq.Data, "delete_"))

	if err := c.catalogSvc.DeleteProduct(ctx.Context, productID); err != nil {
		c.logger.Error(ctx.Context, "failed to delete product", zap.Error(err))
		menucmd.AnswerCallback(ctx, "")
		return
	}
	menucmd.AnswerCallback(ctx, "")
	_, _ = ctx.Bot().Send(tgbotapi.NewMessage(cq.Message.Chat.ID, texts.ProductDeleted))
}

// Change enters the product flow with the edited product id pinned into the
// conversation state. Any step then accepts "." to keep the current value.
func (c *Commands) Change(ctx *tgrouter.Ctx) {
	cq := ctx.Update().CallbackQuery
	productID := cast.ToInt64(strings.TrimPrefix(cq.Data, "change_"))

	if _, err := c.catalogSvc.Product(ctx.Context, productID); err != nil {
		c.logger.Error(ctx.Context, "failed to load product", zap.Error(err))
		menucmd.AnswerCallback(ctx, "")
		return
	}
	if err := ctx.UpdateState(StateName, map[string]string{"edit_id": cast.ToString(productID)}); err != nil {
		c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
		return
	}
	menucmd.AnswerCallback(ctx, "")
	menucmd.RemoveReplyKeyboard(ctx, cq.Message.Chat.ID, texts.AskProductName)
}

// AddProduct enters the product flow from scratch.
func (c *Commands) AddProduct(ctx *tgrouter.Ctx) {
	if err := ctx.UpdateState(StateName, nil); err != nil {
		c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
		return
	}
	menucmd.RemoveReplyKeyboard(ctx, ctx.Update().FromChat().ID, texts.AskProductName)
}

// control intercepts the cancel and back words shared by the admin flows.
// It reports whether the update was consumed.
func (c *Commands) control(ctx *tgrouter.Ctx) bool {
	msg := ctx.Update().Message
	if msg == nil {
		return false
	}
	chatID := msg.Chat.ID
	text := strings.ToLower(strings.TrimSpace(msg.Text))

	switch text {
	case texts.CancelWord:
		if err := ctx.ClearState(); err != nil {
			c.logger.Error(ctx.Context, "failed to clear state", zap.Error(err))
		}
		reply := tgbotapi.NewMessage(chatID, texts.ActionsCancelled)
		reply.ReplyMarkup = keyboards.AdminPanel()
		_, _ = ctx.Bot().Send(reply)
		return true
	case texts.BackWord:
		reply, prevState := backReply(ctx.StateName())
		if prevState != "" {
			if err := ctx.UpdateState(prevState, ctx.StateData()); err != nil {
				c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
				return true
			}
		}
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, reply))
		return true
	}
	return false
}

// commitFailed leaves the flow after a persistence error so the admin is
// not pinned in the final step with stale state data.
func (c *Commands) commitFailed(ctx *tgrouter.Ctx, chatID int64) {
	if err := ctx.ClearState(); err != nil {
		c.logger.Error(ctx.Context, "failed to clear state", zap.Error(err))
	}
	reply := tgbotapi.NewMessage(chatID, texts.SomethingWentWrong)
	reply.ReplyMarkup = keyboards.AdminPanel()
	_, _ = ctx.Bot().Send(reply)
}

// backReply resolves the back word for any admin flow state. Product steps
// rewind one step; everything else, including the single step banner and
// broadcast flows, stays put. prevState is "" when there is no rewind.
func backReply(state string) (reply string, prevState string) {
	prev, ok := productSteps.Prev(state)
	if !ok {
		return texts.NoStepBack, ""
	}
	return texts.BackToStep + "\n" + prev.Reprompt, prev.Name
}

// editedProduct loads the product pinned by the change button, if any.
func (c *Commands) editedProduct(ctx *tgrouter.Ctx) (structs.Product, bool) {
	raw := ctx.StateValue("edit_id")
	if raw == "" {
		return structs.Product{}, false
	}
	product, err := c.catalogSvc.Product(ctx.Context, cast.ToInt64(raw))
	if err != nil {
		c.logger.Error(ctx.Context, "failed to load edited product", zap.Error(err))
		return structs.Product{}, false
	}
	return product, true
}

// Name is the first product step.
func (c *Commands) Name(ctx *tgrouter.Ctx) {
	if c.control(ctx) {
		return
	}
	msg := ctx.Update().Message
	if msg == nil || msg.Text == "" {
		if msg != nil {
			_, _ = ctx.Bot().Send(tgbotapi.NewMessage(msg.Chat.ID, texts.NameNotText))
		}
		return
	}
	chatID := msg.Chat.ID
	name := strings.TrimSpace(msg.Text)

	if name == texts.ReuseWord {
		product, ok := c.editedProduct(ctx)
		if !ok {
			_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.NameNotText))
			return
		}
		name = product.Name
	} else if err := c.catalogSvc.ValidateName(name); err != nil {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.NameLengthError))
		return
	}

	if err := c.advance(ctx, StateDescription, map[string]string{"name": name}); err != nil {
		return
	}
	_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.AskDescription))
}

func (c *Commands) Description(ctx *tgrouter.Ctx) {
	if c.control(ctx) {
		return
	}
	msg := ctx.Update().Message
	if msg == nil || msg.Text == "" {
		if msg != nil {
			_, _ = ctx.Bot().Send(tgbotapi.NewMessage(msg.Chat.ID, texts.DescriptionNotText))
		}
		return
	}
	chatID := msg.Chat.ID
	description := strings.TrimSpace(msg.Text)

	if description == texts.ReuseWord {
		product, ok := c.editedProduct(ctx)
		if !ok {
			_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.DescriptionNotText))
			return
		}
		description = product.Description
	} else if err := c.catalogSvc.ValidateDescription(description); err != nil {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.DescriptionTooShort))
		return
	}

	categories, err := c.catalogSvc.Categories(ctx.Context)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to list categories", zap.Error(err))
		return
	}
	if err := c.advance(ctx, StateCategory, map[string]string{"description": description}); err != nil {
		return
	}

	buttons := make([]keyboards.Button, 0, len(categories))
	for _, cat := range categories {
		buttons = append(buttons, keyboards.Button{Text: cat.Name, Data: cast.ToString(cat.ID)})
	}
	reply := tgbotapi.NewMessage(chatID, texts.AskCategory)
	reply.ReplyMarkup = keyboards.Rows(buttons, 2)
	_, _ = ctx.Bot().Send(reply)
}

// Category only accepts a button press carrying an enrolled category id.
func (c *Commands) Category(ctx *tgrouter.Ctx) {
	if c.control(ctx) {
		return
	}
	cq := ctx.Update().CallbackQuery
	if cq == nil {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(ctx.Update().FromChat().ID, texts.CategoryUseButtons))
		return
	}

	categoryID, err := c.catalogSvc.ValidateCategory(ctx.Context, cq.Data)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCategory) {
			menucmd.AnswerCallback(ctx, texts.CategoryTapButton)
			return
		}
		c.logger.Error(ctx.Context, "failed to validate category", zap.Error(err))
		menucmd.AnswerCallback(ctx, "")
		return
	}

	if err := c.advance(ctx, StatePrice, map[string]string{"category": cast.ToString(categoryID)}); err != nil {
		return
	}
	menucmd.AnswerCallback(ctx, "")
	_, _ = ctx.Bot().Send(tgbotapi.NewMessage(cq.Message.Chat.ID, texts.AskPrice))
}

func (c *Commands) Price(ctx *tgrouter.Ctx) {
	if c.control(ctx) {
		return
	}
	msg := ctx.Update().Message
	if msg == nil || msg.Text == "" {
		if msg != nil {
			_, _ = ctx.Bot().Send(tgbotapi.NewMessage(msg.Chat.ID, texts.PriceNotText))
		}
		return
	}
	chatID := msg.Chat.ID
	raw := strings.TrimSpace(msg.Text)

	if raw == texts.ReuseWord {
		product, ok := c.editedProduct(ctx)
		if !ok {
			_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.PriceInvalid))
			return
		}
		raw = utils.FPrice(product.Price)
	} else if _, err := c.catalogSvc.ValidatePrice(raw); err != nil {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.PriceInvalid))
		return
	}

	if err := c.advance(ctx, StateImage, map[string]string{"price": raw}); err != nil {
		return
	}
	_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.AskImage))
}

// Image is the last product step, it persists the collected fields.
func (c *Commands) Image(ctx *tgrouter.Ctx) {
	if c.control(ctx) {
		return
	}
	msg := ctx.Update().Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID

	var image string
	switch {
	case len(msg.Photo) > 0:
		image = msg.Photo[len(msg.Photo)-1].FileID
	case strings.TrimSpace(msg.Text) == texts.ReuseWord:
		product, ok := c.editedProduct(ctx)
		if !ok {
			_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.ImageInvalid))
			return
		}
		image = product.Image
	default:
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.ImageInvalid))
		return
	}

	note := texts.ProductAdded
	if editID := ctx.StateValue("edit_id"); editID != "" {
		err := c.catalogSvc.UpdateProduct(ctx.Context, structs.UpdateProduct{
			ID:          cast.ToInt64(editID),
			Name:        ctx.StateValue("name"),
			Description: ctx.StateValue("description"),
			Price:       cast.ToFloat64(ctx.StateValue("price")),
			Image:       image,
			CategoryID:  cast.ToInt64(ctx.StateValue("category")),
		})
		if err != nil {
			c.logger.Error(ctx.Context, "failed to update product", zap.Error(err))
			c.commitFailed(ctx, chatID)
			return
		}
		note = texts.ProductChanged
	} else {
		_, err := c.catalogSvc.CreateProduct(ctx.Context, structs.CreateProduct{
			Name:        ctx.StateValue("name"),
			Description: ctx.StateValue("description"),
			Price:       cast.ToFloat64(ctx.StateValue("price")),
			Image:       image,
			CategoryID:  cast.ToInt64(ctx.StateValue("category")),
		})
		if err != nil {
			c.logger.Error(ctx.Context, "failed to create product", zap.Error(err))
			c.commitFailed(ctx, chatID)
			return
		}
	}

	if err := ctx.ClearState(); err != nil {
		c.logger.Error(ctx.Context, "failed to clear state", zap.Error(err))
	}
	reply := tgbotapi.NewMessage(chatID, note)
	reply.ReplyMarkup = keyboards.AdminPanel()
	_, _ = ctx.Bot().Send(reply)
}

// AskBanner starts the banner flow listing the replaceable banners.
func (c *Commands) AskBanner(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID

	names, err := c.bannerSvc.Names(ctx.Context)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to list banners", zap.Error(err))
		return
	}
	if err := ctx.UpdateState(StateBannerImage, nil); err != nil {
		c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
		return
	}
	menucmd.RemoveReplyKeyboard(ctx, chatID, fmt.Sprintf(texts.AskBannerPhoto, names))
}

// BannerImage stores the photo under the banner named in its caption.
func (c *Commands) BannerImage(ctx *tgrouter.Ctx) {
	if c.control(ctx) {
		return
	}
	msg := ctx.Update().Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID

	if len(msg.Photo) == 0 {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.BannerPhotoOrCancel))
		return
	}

	name := strings.TrimSpace(msg.Caption)
	image := msg.Photo[len(msg.Photo)-1].FileID

	err := c.bannerSvc.SetImage(ctx.Context, name, image)
	if err != nil {
		if errors.Is(err, banner.ErrUnknownBanner) {
			names, nerr := c.bannerSvc.Names(ctx.Context)
			if nerr != nil {
				c.logger.Error(ctx.Context, "failed to list banners", zap.Error(nerr))
				return
			}
			_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, fmt.Sprintf(texts.BannerNameInvalid, names)))
			return
		}
		c.logger.Error(ctx.Context, "failed to update banner", zap.Error(err))
		c.commitFailed(ctx, chatID)
		return
	}

	if err := ctx.ClearState(); err != nil {
		c.logger.Error(ctx.Context, "failed to clear state", zap.Error(err))
	}
	reply := tgbotapi.NewMessage(chatID, texts.BannerDone)
	reply.ReplyMarkup = keyboards.AdminPanel()
	_, _ = ctx.Bot().Send(reply)
}

// AskBroadcast starts the broadcast flow.
func (c *Commands) AskBroadcast(ctx *tgrouter.Ctx) {
	if err := ctx.UpdateState(StateBroadcastText, nil); err != nil {
		c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
		return
	}
	menucmd.RemoveReplyKeyboard(ctx, ctx.Update().FromChat().ID, texts.AskBroadcastText)
}

// SendBroadcast fans the text out to every known chat and reports the
// delivery counts.
func (c *Commands) SendBroadcast(ctx *tgrouter.Ctx) {
	if c.control(ctx) {
		return
	}
	msg := ctx.Update().Message
	if msg == nil || msg.Text == "" {
		return
	}
	chatID := msg.Chat.ID

	sent, failed, err := c.broadcastSvc.SendAll(ctx.Context, ctx.Bot(), msg.Text)
	if err != nil {
		c.logger.Error(ctx.Context, "failed to broadcast", zap.Error(err))
		c.commitFailed(ctx, chatID)
		return
	}
	if err := ctx.ClearState(); err != nil {
		c.logger.Error(ctx.Context, "failed to clear state", zap.Error(err))
	}

	reply := tgbotapi.NewMessage(chatID, fmt.Sprintf(texts.BroadcastReport, sent, failed))
	reply.ReplyMarkup = keyboards.AdminPanel()
	_, _ = ctx.Bot().Send(reply)
}

func (c *Commands) advance(ctx *tgrouter.Ctx, state string, data map[string]string) error {
	merged := ctx.StateData()
	for k, v := range data {
		merged[k] = v
	}
	if err := ctx.UpdateState(state, merged); err != nil {
		c.logger.Error(ctx.Context, "failed to set state", zap.Error(err))
		return err
	}
	return nil
}

func fileRef(photo string) tgbotapi.RequestFileData {
	if strings.HasPrefix(photo, "http://") || strings.HasPrefix(photo, "https://") {
		return tgbotapi.FileURL(photo)
	}
	return tgbotapi.FileID(photo)
}
