package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/newsdesk/news-api/internal/api/handler"
	"github.com/newsdesk/news-api/internal/api/middleware"
	"github.com/newsdesk/news-api/internal/core/domain"
	"github.com/newsdesk/news-api/internal/core/service"
	"github.com/newsdesk/news-api/internal/core/token"
	"github.com/newsdesk/news-api/internal/infrastructure/config"
	mongostore "github.com/newsdesk/news-api/internal/infrastructure/db/mongo"
	"github.com/newsdesk/news-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, images *storage.ImageStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("news"))

	// --- Dependencies ---
	authorStore := mongostore.NewAuthorStore(db)
	newsRepo := mongostore.NewNewsRepository(db)

	issuer := token.NewIssuer(token.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		ExpiryDays: cfg.JWT.ExpiryDays,
	})

	authorService := service.NewAuthorService(authorStore, newsRepo, issuer, log)
	newsService := service.NewNewsService(newsRepo, authorStore, images, log)

	authorHandler := handler.NewAuthorHandler(authorService)
	newsHandler := handler.NewNewsHandler(newsService)

	auth := middleware.Auth(middleware.Config{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	})
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Author routes ---
	authors := e.Group("/authors")
	authors.POST("/register", authorHandler.Register)
	authors.POST("/login", authorHandler.Login)
	authors.POST("/addrole", authorHandler.AddRole, auth, adminOnly)
	authors.GET("/getauthors", authorHandler.GetAuthors)
	authors.GET("/count", authorHandler.Count)
	authors.GET("/getauthor/:id", authorHandler.GetAuthor)
	authors.PUT("/updateauthor/:id", authorHandler.UpdateAuthor, auth)
	authors.DELETE("/deleteauthor/:id", authorHandler.DeleteAuthor, auth, adminOnly)

	// --- News routes ---
	news := e.Group("/news")
	news.POST("", newsHandler.Create)
	news.GET("", newsHandler.List)
	news.GET("/count", newsHandler.Count)
	news.GET("/:id", newsHandler.Get)
	news.PUT("/:id", newsHandler.Update)
	news.DELETE("/:id", newsHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb, images)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
