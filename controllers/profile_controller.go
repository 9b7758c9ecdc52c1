// controllers/profile_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumen-social/lumen/middleware"
	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/services"
	"github.com/lumen-social/lumen/utils"
)

type ProfileController struct {
	identity    *services.IdentityService
	projections *services.ProjectionService
	media       *utils.MediaStorage
}

func NewProfileController(identity *services.IdentityService, projections *services.ProjectionService, media *utils.MediaStorage) *ProfileController {
	return &ProfileController{identity: identity, projections: projections, media: media}
}

// Show renders a profile with its posts, follower and following lists.
func (pc *ProfileController) Show(c echo.Context) error {
	bundle, err := pc.projections.BuildProfile(c.Request().Context(), c.Param("userId"), middleware.CurrentUserID(c))
	if err != nil {
		var notFound *services.NotFoundError
		if errors.As(err, &notFound) {
			return renderError(c, http.StatusNotFound, "User not found", "/")
		}
		log.Printf("Error building profile: %v", err)
		return renderError(c, http.StatusInternalServerError, "Something went wrong", "/")
	}
	return render(c, http.StatusOK, "profile.html", map[string]interface{}{
		"Profile": bundle,
	})
}

// EditPage renders the edit-profile form for the acting user.
func (pc *ProfileController) EditPage(c echo.Context) error {
	return render(c, http.StatusOK, "edit-profile.html", map[string]interface{}{
		"User": middleware.CurrentUser(c),
	})
}

// Edit applies the bio and optional password change.
func (pc *ProfileController) Edit(c echo.Context) error {
	var req models.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return render(c, http.StatusOK, "edit-profile.html", map[string]interface{}{
			"User":  middleware.CurrentUser(c),
			"Error": "Invalid request",
		})
	}

	userID := middleware.CurrentUserID(c)
	user, err := pc.identity.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		var validation *services.ValidationError
		var authErr *services.AuthError
		message := "Something went wrong, please try again"
		switch {
		case errors.As(err, &validation):
			message = validation.Message
		case errors.As(err, &authErr):
			message = authErr.Message
		default:
			log.Printf("Error updating profile: %v", err)
		}
		return render(c, http.StatusOK, "edit-profile.html", map[string]interface{}{
			"User":  middleware.CurrentUser(c),
			"Error": message,
		})
	}
	return c.Redirect(http.StatusFound, "/profile/"+user.ID)
}

// UploadAvatar stores a new avatar image for the acting user.
func (pc *ProfileController) UploadAvatar(c echo.Context) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Redirect(http.StatusFound, "/profile/edit?error=no_file")
	}

	userID := middleware.CurrentUserID(c)
	avatarURL, err := pc.media.SaveAvatar(file, userID)
	if err != nil {
		log.Printf("Error saving avatar: %v", err)
		return c.Redirect(http.StatusFound, "/profile/edit?error=upload_failed")
	}
	if err := pc.identity.SetAvatar(c.Request().Context(), userID, avatarURL); err != nil {
		log.Printf("Error storing avatar URL: %v", err)
		return c.Redirect(http.StatusFound, "/profile/edit?error=upload_failed")
	}
	return c.Redirect(http.StatusFound, "/profile/"+userID)
}

// DeleteAvatar removes the acting user's avatar file and reference.
func (pc *ProfileController) DeleteAvatar(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user.Avatar != "" {
		if err := pc.media.RemoveByURL(user.Avatar); err != nil {
			log.Printf("Error removing avatar file: %v", err)
			return c.Redirect(http.StatusFound, "/profile/edit?error=delete_failed")
		}
		if err := pc.identity.SetAvatar(c.Request().Context(), user.ID, ""); err != nil {
			log.Printf("Error clearing avatar: %v", err)
			return c.Redirect(http.StatusFound, "/profile/edit?error=delete_failed")
		}
	}
	return c.Redirect(http.StatusFound, "/profile/"+user.ID)
}
