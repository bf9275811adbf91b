package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/catalog-api/internal/audit"
	"github.com/BruksfildServices01/catalog-api/internal/auth"
	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/handlers"
	"github.com/BruksfildServices01/catalog-api/internal/httperr"
	"github.com/BruksfildServices01/catalog-api/internal/middleware"
	"github.com/BruksfildServices01/catalog-api/internal/pagination"
	ucLogin "github.com/BruksfildServices01/catalog-api/internal/usecase/login"
	ucProduct "github.com/BruksfildServices01/catalog-api/internal/usecase/product"
	ucUser "github.com/BruksfildServices01/catalog-api/internal/usecase/user"
)

// Deps is built once at startup and shared by every handler.
type Deps struct {
	Products  catalog.ProductRepository
	Users     catalog.UserRepository
	Clients   catalog.ClientRepository
	AuditLogs catalog.AuditLogRepository

	Tokens      *auth.TokenManager
	Credentials auth.CredentialValidator
	Throttle    auth.Throttle
	Audit       audit.Recorder
	Pager       pagination.Service

	CORSAllowedOrigins []string
	// Health may be nil.
	Health handlers.Pinger
}

// NewRouter builds the engine with the global middleware and every route.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		httperr.Recovery(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.CORSMiddleware(deps.CORSAllowedOrigins),
	)

	r.NoRoute(httperr.NoRoute)
	r.NoMethod(httperr.NoMethod)

	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	if deps.Audit == nil {
		deps.Audit = audit.Noop{}
	}
	if deps.Throttle == nil {
		deps.Throttle = auth.NoopThrottle{}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	listProductsUC := ucProduct.NewListProducts(deps.Products, deps.Pager)
	showProductUC := ucProduct.NewShowProduct(deps.Products)
	createProductUC := ucProduct.NewCreateProduct(deps.Products, deps.Audit)

	listUsersUC := ucUser.NewListUsers(deps.Users, deps.Pager)
	showUserUC := ucUser.NewShowUser(deps.Users)
	createUserUC := ucUser.NewCreateUser(deps.Users, deps.Audit)
	deleteUserUC := ucUser.NewDeleteUser(deps.Users, deps.Audit)

	loginUC := ucLogin.NewLogin(deps.Credentials, deps.Tokens, deps.Throttle, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	productHandler := handlers.NewProductHandler(listProductsUC, showProductUC, createProductUC)
	userHandler := handlers.NewUserHandler(listUsersUC, showUserUC, createUserUC, deleteUserUC)
	authHandler := handlers.NewAuthHandler(loginUC)
	meHandler := handlers.NewMeHandler()
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditLogs, deps.Pager)
	healthHandler := handlers.NewHealthHandler(deps.Health)

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Show)
		api.POST("/products", productHandler.Create)

		api.POST("/login_check", authHandler.Login)

		secured := api.Group("")
		secured.Use(middleware.RequireClient(deps.Tokens, deps.Clients))
		{
			secured.GET("/users", userHandler.List)
			secured.GET("/users/:id", userHandler.Show)
			secured.POST("/users", userHandler.Create)
			secured.DELETE("/users/:id", userHandler.Delete)

			secured.GET("/clients/me", meHandler.GetMe)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
