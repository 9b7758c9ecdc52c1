// controllers/post_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumen-social/lumen/middleware"
	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/services"
	"github.com/lumen-social/lumen/utils"
)

type PostController struct {
	content *services.ContentService
	media   *utils.MediaStorage
}

func NewPostController(content *services.ContentService, media *utils.MediaStorage) *PostController {
	return &PostController{content: content, media: media}
}

// UploadPage renders the upload form.
func (pc *PostController) UploadPage(c echo.Context) error {
	return render(c, http.StatusOK, "upload.html", nil)
}

// Upload stores the media file and creates the post, notifying the
// author's followers.
func (pc *PostController) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return render(c, http.StatusOK, "upload.html", map[string]interface{}{
			"Error": "Choose a file first",
		})
	}

	saved, err := pc.media.SavePostMedia(file)
	if err != nil {
		return render(c, http.StatusOK, "upload.html", map[string]interface{}{
			"Error": "Upload failed: " + err.Error(),
		})
	}

	mediaType := utils.ClassifyMediaType(saved.MimeType)
	thumbnailURL := ""
	if mediaType == models.MediaVideo {
		thumbnailURL, err = pc.media.GenerateVideoThumbnail(saved.URL)
		if err != nil {
			// A post without a poster frame still renders.
			log.Printf("Error generating thumbnail for %s: %v", saved.URL, err)
			thumbnailURL = ""
		}
	}

	userID := middleware.CurrentUserID(c)
	_, err = pc.content.CreatePost(c.Request().Context(), userID, services.NewPost{
		MediaURL:     saved.URL,
		MediaType:    mediaType,
		MimeType:     saved.MimeType,
		ThumbnailURL: thumbnailURL,
		Caption:      c.FormValue("caption"),
		Size:         saved.Size,
	})
	if err != nil {
		log.Printf("Error creating post: %v", err)
		return render(c, http.StatusOK, "upload.html", map[string]interface{}{
			"Error": "Upload failed, please try again",
		})
	}

	return c.Redirect(http.StatusFound, "/profile/"+userID)
}

// Delete removes an owned post with its likes, comments and media. A
// missing post or someone else's post is ignored, not reported.
func (pc *PostController) Delete(c echo.Context) error {
	userID := middleware.CurrentUserID(c)
	if err := pc.content.DeletePost(c.Request().Context(), c.Param("postId"), userID); err != nil {
		log.Printf("Error deleting post: %v", err)
		return redirectBack(c)
	}
	return c.Redirect(http.StatusFound, "/profile/"+userID)
}
