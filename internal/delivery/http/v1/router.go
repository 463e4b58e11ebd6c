package v1

import (
	"net/http"

	"go-form-relay/config"
	"go-form-relay/internal/delivery/http/middleware"
	"go-form-relay/internal/domain"
	"go-form-relay/internal/usecase"
	"go-form-relay/pkg/apperror"
	"go-form-relay/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SubmissionUC   domain.SubmissionUsecase
	ContactUC      domain.ContactUsecase
	SubscriptionUC domain.SubscriptionUsecase
	HealthUC       usecase.HealthUsecase
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.HTTPMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// Form routes keep the paths the existing frontends post to
	public := r.Group("")
	NewSubmissionHandler(public, deps.SubmissionUC)
	NewContactHandler(public, deps.ContactUC)
	NewSubscriptionHandler(public, deps.SubscriptionUC)

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.HealthUC.Check(c.Request.Context()))
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Not Found"))
	})

	return r
}
