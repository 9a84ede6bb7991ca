package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/rfid"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	MediatorUC   domain.MediatorUsecase
	EmployeeUC   domain.EmployeeUsecase
	EmployerUC   domain.EmployerUsecase
	JobPostingUC domain.JobPostingUsecase
	SavedJobUC   domain.SavedJobUsecase
	ChainUC      domain.ChainUsecase
	UploadUC     domain.UploadUsecase
	HealthUC     usecase.HealthUsecase
	RFIDStore    rfid.Store
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))
	chainLimiter := middleware.RateLimitMiddleware(middleware.ChainRateLimitConfig(cfg.RateLimitChainThreshold, window))
	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(window))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		if status["status"] != "ok" {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The RFID endpoint is served both at the root, where reader clients
	// expect it, and under /v1.
	NewRFIDHandler([]gin.IRoutes{r, v1}, deps.RFIDStore)

	authenticator := middleware.NewAuthenticator(deps.JWKSProvider, cfg.SupabaseJWTSecret, deps.AuthUC)

	// Public routes
	public := v1.Group("")
	public.Use(authenticator.Optional())

	// Protected routes
	protected := v1.Group("")
	protected.Use(authenticator.Required())
	{
		NewAuthHandler(protected, deps.AuthUC)
		NewMediatorHandler(public, protected, deps.MediatorUC)
		NewEmployeeHandler(protected, deps.EmployeeUC)
		NewEmployerHandler(public, protected, deps.EmployerUC)
		NewJobPostingHandler(public, protected, deps.JobPostingUC)
		NewSavedJobHandler(protected, deps.SavedJobUC)
		NewChainHandler(public, protected, deps.ChainUC, chainLimiter)
		NewUploadHandler(protected, deps.UploadUC, uploadLimiter)
	}

	return r
}
