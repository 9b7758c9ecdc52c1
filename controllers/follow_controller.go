// controllers/follow_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lumen-social/lumen/middleware"
	"github.com/lumen-social/lumen/services"
)

type FollowController struct {
	relationships *services.RelationshipService
}

func NewFollowController(relationships *services.RelationshipService) *FollowController {
	return &FollowController{relationships: relationships}
}

// ToggleFollow flips the follow edge towards the target user. Ajax
// callers get the refreshed counts; page navigations bounce back to the
// referring page, silently on failure.
func (fc *FollowController) ToggleFollow(c echo.Context) error {
	result, err := fc.relationships.ToggleFollow(c.Request().Context(), middleware.CurrentUserID(c), c.Param("userId"))
	if err != nil {
		var validation *services.ValidationError
		var notFound *services.NotFoundError
		message := "Server error"
		status := http.StatusInternalServerError
		switch {
		case errors.As(err, &validation):
			message, status = validation.Message, http.StatusOK
		case errors.As(err, &notFound):
			message, status = notFound.Message, http.StatusOK
		default:
			log.Printf("Error toggling follow: %v", err)
		}
		if isAjax(c) {
			return c.JSON(status, map[string]interface{}{
				"success": false,
				"message": message,
			})
		}
		return redirectBack(c)
	}

	if isAjax(c) {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":        true,
			"following":      result.Following,
			"followersCount": result.FollowersCount,
			"followingCount": result.FollowingCount,
		})
	}

	// Avoid bouncing back onto the toggle endpoint itself.
	referer := c.Request().Referer()
	if referer != "" && !strings.Contains(referer, "/follow/") {
		return c.Redirect(http.StatusFound, referer)
	}
	return c.Redirect(http.StatusFound, "/")
}
