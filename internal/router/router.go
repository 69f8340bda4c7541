package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"github.com/pageza/foodies/backend/internal/api"
	"github.com/pageza/foodies/backend/internal/middleware"
	"github.com/pageza/foodies/backend/internal/service"
	"github.com/pageza/foodies/backend/internal/types"
)

// Dependencies are the services and settings the routes are built from
type Dependencies struct {
	DB     *gorm.DB
	Logger *zap.Logger

	Auth       service.IAuthService
	Recipes    service.IRecipeService
	Users      service.IUserService
	References service.IReferenceService

	// AuthLimiter guards register and login, nil disables it
	AuthLimiter gin.HandlerFunc
	CORSOrigins []string
}

// SetupRouter configures the application routes
func SetupRouter(deps Dependencies) *gin.Engine {
	api.ConfigureValidator()

	router := gin.New()
	router.MaxMultipartMemory = api.MaxUploadSize

	router.Use(
		middleware.RequestID(),
		ginzap.GinzapWithConfig(deps.Logger, &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        true,
			SkipPaths:  []string{"/health", "/api/health"},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}
				if v := c.GetString(middleware.ContextRequestID); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}
				if id, ok := middleware.CurrentUserID(c); ok {
					fields = append(fields, zap.String("user_id", id.String()))
				}
				return fields
			},
		}),
		ginzap.RecoveryWithZap(deps.Logger, true),
		middleware.CORS(deps.CORSOrigins),
		middleware.ErrorHandler(deps.Logger),
	)

	health := api.NewHealthHandler(deps.DB, deps.Logger)
	router.GET("/health", health.Health)

	requireAuth := middleware.AuthMiddleware(deps.Auth)

	v1 := router.Group("/api")
	v1.GET("/health", health.Health)

	api.NewAuthHandler(deps.Auth, deps.AuthLimiter).RegisterRoutes(v1, requireAuth)
	api.NewRecipeHandler(deps.Recipes).RegisterRoutes(v1, requireAuth)
	api.NewUserHandler(deps.Users).RegisterRoutes(v1, requireAuth)
	api.NewReferenceHandler(deps.References).RegisterRoutes(v1)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.MessageResponse{Message: "Not found"})
	})

	return router
}
