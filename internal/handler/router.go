package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	rd "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"splitpay/internal/handler/api"
	"splitpay/internal/handler/middleware"
	"splitpay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	redisClient *rd.Client,
	orderHandler *api.OrderHandler,
	claimHandler *api.ClaimHandler,
	webhookHandler *api.WebhookHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, redisClient, orderHandler, claimHandler, webhookHandler, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	redisClient *rd.Client,
	orderHandler *api.OrderHandler,
	claimHandler *api.ClaimHandler,
	webhookHandler *api.WebhookHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var createClaimMw []gin.HandlerFunc
	createClaimMw = append(createClaimMw, sessionMiddleware.OptionalSession())
	if cfg.Claim.RateLimiterOn && redisClient != nil {
		createClaimMw = append(createClaimMw,
			middleware.RedisRateLimit(redisClient, cfg.Claim.RateLimit, cfg.Claim.RateWindow))
	}

	apiGroup := engine.Group("/api")
	{
		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: orderHandler.GetAvailability},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: orderHandler.CancelOrder},
				{Method: http.MethodPost, Path: "/:id/claims", Handler: claimHandler.CreateClaim, Mw: createClaimMw},
			})
		}

		claims := apiGroup.Group("/claims")
		{
			addRoutes(claims, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: claimHandler.GetClaim},
			})

			sessionRequired := claims.Group("")
			sessionRequired.Use(sessionMiddleware.RequireSession())
			addRoutes(sessionRequired, []route{
				{Method: http.MethodPost, Path: "/:id/start", Handler: claimHandler.StartPayment},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: claimHandler.CancelClaim},
			})
		}

		webhooks := apiGroup.Group("/webhooks")
		{
			addRoutes(webhooks, []route{
				{Method: http.MethodPost, Path: "/payment", Handler: webhookHandler.PaymentOutcome},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
