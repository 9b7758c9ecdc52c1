// controllers/engagement_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumen-social/lumen/middleware"
	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/services"
)

type EngagementController struct {
	engagement *services.EngagementService
}

func NewEngagementController(engagement *services.EngagementService) *EngagementController {
	return &EngagementController{engagement: engagement}
}

// ToggleLike flips the like state and answers with the fresh count.
// Every failure degrades to {success:false} so the page script can
// leave the button untouched.
func (ec *EngagementController) ToggleLike(c echo.Context) error {
	result, err := ec.engagement.ToggleLike(c.Request().Context(), c.Param("postId"), middleware.CurrentUserID(c))
	if err != nil {
		if _, ok := err.(*services.NotFoundError); !ok {
			log.Printf("Error toggling like: %v", err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"liked":     result.Liked,
		"likeCount": result.LikeCount,
	})
}

// AddComment appends a comment to the post. Plain form posts bounce
// back to the post page; ajax callers get the stored comment.
func (ec *EngagementController) AddComment(c echo.Context) error {
	postID := c.Param("postId")
	var req models.CommentRequest
	if err := c.Bind(&req); err != nil {
		if isAjax(c) {
			return c.JSON(http.StatusOK, map[string]interface{}{"success": false})
		}
		return c.Redirect(http.StatusFound, "/post/"+postID)
	}

	comment, err := ec.engagement.AddComment(c.Request().Context(), postID, middleware.CurrentUserID(c), req.Comment)
	if err != nil {
		switch err.(type) {
		case *services.ValidationError, *services.NotFoundError:
		default:
			log.Printf("Error adding comment: %v", err)
		}
		if isAjax(c) {
			return c.JSON(http.StatusOK, map[string]interface{}{"success": false})
		}
		return c.Redirect(http.StatusFound, "/post/"+postID)
	}

	if isAjax(c) {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
			"comment": comment,
		})
	}
	return c.Redirect(http.StatusFound, "/post/"+postID)
}

// DeleteComment removes a comment when the requester may do so;
// anything else is a silent failure.
func (ec *EngagementController) DeleteComment(c echo.Context) error {
	deleted, err := ec.engagement.DeleteComment(c.Request().Context(), c.Param("commentId"), middleware.CurrentUserID(c))
	if err != nil {
		log.Printf("Error deleting comment: %v", err)
	}
	if isAjax(c) {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": deleted && err == nil})
	}
	return redirectBack(c)
}
