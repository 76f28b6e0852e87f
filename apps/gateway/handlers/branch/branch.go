package branch

import (
	"errors"
	"net/http"

	"lavkabot/internal/branch"
	"lavkabot/internal/responses"
	"lavkabot/internal/structs"
	"lavkabot/pkg/logger"
	"lavkabot/pkg/reply"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		GetListBranch(c *gin.Context)
		GetByNameBranch(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger    logger.Logger
		BranchSvc branch.Service
	}

	handler struct {
		logger    logger.Logger
		branchSvc branch.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:    p.Logger,
		branchSvc: p.BranchSvc,
	}
}

func (h *handler) GetListBranch(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	list, err := h.branchSvc.List(ctx)
	if err != nil {
		h.logger.Error(ctx, " err on h.branchSvc.List", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = list
}

func (h *handler) GetByNameBranch(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
		name     = c.Param("name")
	)
	defer reply.Json(c.Writer, http.StatusOK, &response)

	respond, err := h.branchSvc.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, structs.ErrNotFound) {
			response = responses.NotFound
			return
		}
		h.logger.Error(ctx, " err on h.branchSvc.GetByName", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = respond
}
