// controllers/controllers.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lumen-social/lumen/middleware"
)

// isAjax reports whether the client expects a JSON answer instead of a
// page navigation.
func isAjax(c echo.Context) bool {
	return c.Request().Header.Get("X-Requested-With") == "XMLHttpRequest" ||
		strings.Contains(c.Request().Header.Get("Accept"), "application/json")
}

// redirectBack sends the browser to the referring page, or home.
func redirectBack(c echo.Context) error {
	referer := c.Request().Referer()
	if referer == "" {
		referer = "/"
	}
	return c.Redirect(http.StatusFound, referer)
}

// render executes a template with the acting user injected, so every
// view can show the session state.
func render(c echo.Context, code int, name string, data map[string]interface{}) error {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["CurrentUser"] = middleware.CurrentUser(c)
	return c.Render(code, name, data)
}

// renderError shows the generic error page.
func renderError(c echo.Context, code int, message, backLink string) error {
	return render(c, code, "error.html", map[string]interface{}{
		"Message":  message,
		"BackLink": backLink,
	})
}
