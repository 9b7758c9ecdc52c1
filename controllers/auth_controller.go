// controllers/auth_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumen-social/lumen/middleware"
	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/services"
)

type AuthController struct {
	identity *services.IdentityService
	sessions *middleware.SessionManager
}

func NewAuthController(identity *services.IdentityService, sessions *middleware.SessionManager) *AuthController {
	return &AuthController{identity: identity, sessions: sessions}
}

// LoginPage renders the login form. Logged-in visitors go home.
func (ac *AuthController) LoginPage(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	var errorMessage string
	switch c.QueryParam("error") {
	case "user_not_found":
		errorMessage = "Invalid session, please log in again."
	case "session_expired":
		errorMessage = "Session expired, please log in again."
	}
	return render(c, http.StatusOK, "login.html", map[string]interface{}{
		"Error": errorMessage,
	})
}

// Login authenticates the form credentials and establishes the session.
// A destination recorded before the auth redirect is honored once.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return render(c, http.StatusOK, "login.html", map[string]interface{}{
			"Error": "Invalid request",
		})
	}
	if err := c.Validate(&req); err != nil {
		return render(c, http.StatusOK, "login.html", map[string]interface{}{
			"Error": "Username and password are required",
		})
	}

	user, err := ac.identity.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		var notFound *services.NotFoundError
		var authErr *services.AuthError
		message := "Something went wrong, please try again"
		switch {
		case errors.As(err, &notFound):
			message = "Unknown username"
		case errors.As(err, &authErr):
			message = "Incorrect password"
		default:
			log.Printf("Login error: %v", err)
		}
		return render(c, http.StatusOK, "login.html", map[string]interface{}{
			"Error": message,
		})
	}

	returnTo := ac.sessions.TakeReturnTo(c)
	if err := ac.sessions.Login(c, user.ID); err != nil {
		log.Printf("Error establishing session: %v", err)
		return render(c, http.StatusOK, "login.html", map[string]interface{}{
			"Error": "Something went wrong, please try again",
		})
	}
	if returnTo == "" {
		returnTo = "/"
	}
	return c.Redirect(http.StatusFound, returnTo)
}

// RegisterPage renders the registration form.
func (ac *AuthController) RegisterPage(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	return render(c, http.StatusOK, "register.html", nil)
}

// Register creates the account and logs the new user in.
func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return render(c, http.StatusOK, "register.html", map[string]interface{}{
			"Error": "Invalid request",
		})
	}
	if err := c.Validate(&req); err != nil {
		return render(c, http.StatusOK, "register.html", map[string]interface{}{
			"Error": "Username and password are required",
		})
	}

	user, err := ac.identity.Register(c.Request().Context(), req)
	if err != nil {
		var validation *services.ValidationError
		var conflict *services.ConflictError
		message := "Something went wrong, please try again"
		switch {
		case errors.As(err, &validation):
			message = validation.Message
		case errors.As(err, &conflict):
			message = conflict.Message
		default:
			log.Printf("Register error: %v", err)
		}
		return render(c, http.StatusOK, "register.html", map[string]interface{}{
			"Error": message,
		})
	}

	if err := ac.sessions.Login(c, user.ID); err != nil {
		log.Printf("Error establishing session: %v", err)
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Redirect(http.StatusFound, "/profile/"+user.ID)
}

// Logout destroys the session.
func (ac *AuthController) Logout(c echo.Context) error {
	ac.sessions.Logout(c)
	return c.Redirect(http.StatusFound, "/login")
}
