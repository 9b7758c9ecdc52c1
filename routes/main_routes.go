// routes/main_routes.go
package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/lumen-social/lumen/controllers"
	"github.com/lumen-social/lumen/middleware"
)

// RegisterRoutes wires the whole HTTP surface. Mutation endpoints sit
// behind RequireLogin; read pages resolve the viewer when a session
// exists and render anonymously otherwise.
func RegisterRoutes(
	e *echo.Echo,
	sessions *middleware.SessionManager,
	authController *controllers.AuthController,
	feedController *controllers.FeedController,
	postController *controllers.PostController,
	engagementController *controllers.EngagementController,
	followController *controllers.FollowController,
	profileController *controllers.ProfileController,
	notificationController *controllers.NotificationController,
	searchController *controllers.SearchController,
) {
	// Authentication
	e.GET("/login", authController.LoginPage)
	e.POST("/login", authController.Login)
	e.GET("/register", authController.RegisterPage)
	e.POST("/register", authController.Register)
	e.GET("/logout", authController.Logout)

	// Public pages
	e.GET("/", feedController.Home)
	e.GET("/post/:postId", feedController.PostDetail)
	e.GET("/profile/:userId", profileController.Show)
	e.GET("/search", searchController.Search)

	// Everything below needs an acting user
	auth := e.Group("", sessions.RequireLogin())

	auth.GET("/upload", postController.UploadPage)
	auth.POST("/upload", postController.Upload)
	auth.POST("/post/delete/:postId", postController.Delete)

	auth.POST("/like/:postId", engagementController.ToggleLike)
	auth.POST("/comment/:postId", engagementController.AddComment)
	auth.POST("/comment/delete/:commentId", engagementController.DeleteComment)

	auth.POST("/follow/:userId", followController.ToggleFollow)

	auth.GET("/profile/edit", profileController.EditPage)
	auth.POST("/profile/edit", profileController.Edit)
	auth.POST("/profile/avatar", profileController.UploadAvatar)
	auth.POST("/profile/avatar/delete", profileController.DeleteAvatar)

	auth.GET("/notifications", notificationController.List)
	auth.POST("/notifications", notificationController.List)
	auth.POST("/notifications/clear", notificationController.Clear)
}
