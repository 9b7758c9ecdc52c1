package main

import (
	"html/template"
	"io"
	"log"
	"mime"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/lumen-social/lumen/config"
	"github.com/lumen-social/lumen/controllers"
	"github.com/lumen-social/lumen/middleware"
	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/repositories"
	"github.com/lumen-social/lumen/routes"
	"github.com/lumen-social/lumen/services"
	"github.com/lumen-social/lumen/sessions"
	"github.com/lumen-social/lumen/utils"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// TemplateRenderer renders the server-side HTML views.
type TemplateRenderer struct {
	templates *template.Template
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Ensure correct MIME type for SVG files
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	cfg := config.Load()

	// Pick the backing store. The memory store exists for local runs
	// without a database.
	var store *repositories.Store
	if cfg.StoreMode == "memory" {
		log.Println("Using in-memory store, data will not survive a restart")
		store = repositories.NewMemoryStore()
	} else {
		client := config.ConnectDB()
		store = repositories.NewMongoStore(client.Database(config.DatabaseName()))
	}

	// Sessions live in Redis when it is reachable, in memory otherwise.
	var sessionStore sessions.Store
	if redisClient := config.ConnectRedis(); redisClient != nil {
		sessionStore = sessions.NewRedisStore(redisClient)
	} else {
		log.Println("Using in-memory sessions, logins will not survive a restart")
		sessionStore = sessions.NewMemoryStore()
	}
	codec := sessions.NewCookieCodec(cfg.SessionSecret)
	sessionManager := middleware.NewSessionManager(sessionStore, codec, store.Users)

	media, err := utils.NewMediaStorage(cfg.PublicDir)
	if err != nil {
		log.Fatalf("Failed to prepare media directories: %v", err)
	}

	// Initialize services
	identityService := services.NewIdentityService(store)
	relationshipService := services.NewRelationshipService(store)
	contentService := services.NewContentService(store, media)
	engagementService := services.NewEngagementService(store)
	notificationService := services.NewNotificationService(store)
	projectionService := services.NewProjectionService(store, relationshipService)

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	e.Renderer = &TemplateRenderer{
		templates: template.Must(template.ParseGlob(filepath.Join("templates", "*.html"))),
	}

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowedDomains: []string{"*"}, // Configure this based on your needs
		AllowInlineJS:  true,          // Set to false in production
	}))
	e.Use(sessionManager.LoadSession())

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, models.Response{
			Status:  200,
			Message: "healthy",
		})
	})

	// Static assets and media
	e.Static("/css", filepath.Join(cfg.PublicDir, "css"))
	e.Static("/uploads", filepath.Join(cfg.PublicDir, "uploads"))
	e.Static("/avatars", filepath.Join(cfg.PublicDir, "avatars"))

	// Initialize controllers
	authController := controllers.NewAuthController(identityService, sessionManager)
	feedController := controllers.NewFeedController(projectionService)
	postController := controllers.NewPostController(contentService, media)
	engagementController := controllers.NewEngagementController(engagementService)
	followController := controllers.NewFollowController(relationshipService)
	profileController := controllers.NewProfileController(identityService, projectionService, media)
	notificationController := controllers.NewNotificationController(notificationService)
	searchController := controllers.NewSearchController(projectionService)

	routes.RegisterRoutes(e, sessionManager,
		authController, feedController, postController, engagementController,
		followController, profileController, notificationController, searchController)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
