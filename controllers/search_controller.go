// controllers/search_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumen-social/lumen/middleware"
	"github.com/lumen-social/lumen/services"
)

type SearchController struct {
	projections *services.ProjectionService
}

func NewSearchController(projections *services.ProjectionService) *SearchController {
	return &SearchController{projections: projections}
}

// Search matches users by username and posts by caption. An empty
// query renders an empty result page.
func (sc *SearchController) Search(c echo.Context) error {
	query := c.QueryParam("q")
	results, err := sc.projections.Search(c.Request().Context(), query, middleware.CurrentUserID(c))
	if err != nil {
		log.Printf("Error searching for %q: %v", query, err)
		return renderError(c, http.StatusInternalServerError, "Something went wrong", "/")
	}
	return render(c, http.StatusOK, "search.html", map[string]interface{}{
		"Query":   query,
		"Results": results,
	})
}
