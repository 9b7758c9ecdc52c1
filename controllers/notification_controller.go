// controllers/notification_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumen-social/lumen/middleware"
	"github.com/lumen-social/lumen/services"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

// List renders the notification feed. Viewing it marks everything read.
func (nc *NotificationController) List(c echo.Context) error {
	views, err := nc.notifications.ListFor(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		log.Printf("Error listing notifications: %v", err)
		return renderError(c, http.StatusInternalServerError, "Something went wrong", "/")
	}
	return render(c, http.StatusOK, "notifications.html", map[string]interface{}{
		"Notifications": views,
	})
}

// Clear deletes every notification of the acting user.
func (nc *NotificationController) Clear(c echo.Context) error {
	if err := nc.notifications.ClearAll(c.Request().Context(), middleware.CurrentUserID(c)); err != nil {
		log.Printf("Error clearing notifications: %v", err)
	}
	return c.Redirect(http.StatusFound, "/notifications")
}
