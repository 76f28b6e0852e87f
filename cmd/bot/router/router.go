package router

import (
	"context"
	"net/http"

	"lavkabot/apps/gateway/handlers/branch"
	"lavkabot/apps/gateway/handlers/catalog"
	"lavkabot/apps/gateway/handlers/middleware"
	"lavkabot/pkg/config"
	"lavkabot/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
	Catalog   catalog.Handler
	Branch    branch.Handler
}

func NewRouter(params Params) {
	r := gin.New()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	baseUrl := "/api/v1"
	out := r.Group(baseUrl)
	out.Use(params.Ctx(), gin.Logger(), gin.Recovery())

	categoryGroup := out.Group("/category")
	{
		categoryGroup.GET("/", params.Catalog.GetListCategory)
	}
	productGroup := out.Group("/product")
	{
		productGroup.GET("/", params.Catalog.GetListProduct)
		productGroup.GET("/:id", params.Catalog.GetByIDProduct)
	}
	branchGroup := out.Group("/branch")
	{
		branchGroup.GET("/", params.Branch.GetListBranch)
		branchGroup.GET("/:name", params.Branch.GetByNameBranch)
	}

	server := http.Server{
		Addr: params.Config.GetString("server.port"),
		Handler: cors.New(cors.Options{
			AllowedHeaders:   []string{"*"},
			AllowedOrigins:   []string{"http://localhost:5173"},
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowCredentials: true,
			AllowOriginVaryRequestFunc: func(r *http.Request, origin string) (bool, []string) {
				return true, []string{"*"}
			},
		}).Handler(r),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := server.ListenAndServe(); err != nil {
						params.Logger.Error(ctx, "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Application starting on port", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Application stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}
