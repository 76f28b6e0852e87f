package catalog

import (
	"errors"
	"net/http"

	"lavkabot/internal/catalog"
	"lavkabot/internal/responses"
	"lavkabot/internal/structs"
	"lavkabot/pkg/logger"
	"lavkabot/pkg/reply"
	"lavkabot/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		GetListCategory(c *gin.Context)
		GetListProduct(c *gin.Context)
		GetByIDProduct(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger     logger.Logger
		CatalogSvc catalog.Service
	}

	handler struct {
		logger     logger.Logger
		catalogSvc catalog.Service
	}

	// productView mirrors the bot captions: price both as a number and
	// pre-formatted with thousand separators for dashboard rendering.
	productView struct {
		structs.Product
		PriceDisplay string `json:"price_display"`
	}
)

func New(p Params) Handler {
	return &handler{
		logger:     p.Logger,
		catalogSvc: p.CatalogSvc,
	}
}

func (h *handler) GetListCategory(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	list, err := h.catalogSvc.Categories(ctx)
	if err != nil {
		h.logger.Error(ctx, " err on h.catalogSvc.Categories", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = list
}

func (h *handler) GetListProduct(c *gin.Context) {
	var (
		response   structs.Response
		ctx        = c.Request.Context()
		categoryID = cast.ToInt64(c.Query("category_id"))
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	if categoryID == 0 {
		response = responses.BadRequest
		return
	}

	list, err := h.catalogSvc.ProductsByCategory(ctx, categoryID)
	if err != nil {
		h.logger.Error(ctx, " err on h.catalogSvc.ProductsByCategory", zap.Error(err))
		response = responses.InternalErr
		return
	}

	views := make([]productView, 0, len(list))
	for _, p := range list {
		views = append(views, productView{Product: p, PriceDisplay: utils.FCurrency(p.Price)})
	}

	response = responses.Success
	response.Payload = views
}

func (h *handler) GetByIDProduct(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
		id       = cast.ToInt64(c.Param("id"))
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	product, err := h.catalogSvc.Product(ctx, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, " err on h.catalogSvc.Product", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = productView{Product: product, PriceDisplay: utils.FCurrency(product.Price)}
}
