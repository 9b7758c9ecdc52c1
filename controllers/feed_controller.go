// controllers/feed_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumen-social/lumen/middleware"
	"github.com/lumen-social/lumen/services"
)

type FeedController struct {
	projections *services.ProjectionService
}

func NewFeedController(projections *services.ProjectionService) *FeedController {
	return &FeedController{projections: projections}
}

// Home renders the feed of all posts, newest first.
func (fc *FeedController) Home(c echo.Context) error {
	items, err := fc.projections.BuildFeed(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		log.Printf("Error building feed: %v", err)
		return renderError(c, http.StatusInternalServerError, "Something went wrong", "/")
	}
	return render(c, http.StatusOK, "index.html", map[string]interface{}{
		"Posts": items,
	})
}

// PostDetail renders a single post with its likes and comments.
func (fc *FeedController) PostDetail(c echo.Context) error {
	item, err := fc.projections.BuildPostDetail(c.Request().Context(), c.Param("postId"), middleware.CurrentUserID(c))
	if err != nil {
		var notFound *services.NotFoundError
		if errors.As(err, &notFound) {
			return renderError(c, http.StatusNotFound, "Post not found", "/")
		}
		log.Printf("Error building post detail: %v", err)
		return renderError(c, http.StatusInternalServerError, "Something went wrong", "/")
	}
	return render(c, http.StatusOK, "post-detail.html", map[string]interface{}{
		"Post": item,
	})
}
