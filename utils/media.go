// utils/media.go
package utils

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const (
	uploadsURLPrefix = "/uploads"
	avatarsURLPrefix = "/avatars"

	// MaxUploadSize limits post media (any type)
	MaxUploadSize = 100 * 1024 * 1024
	// MaxAvatarSize limits avatar images
	MaxAvatarSize = 2 * 1024 * 1024

	avatarMaxWidth = 512
)

// ClassifyMediaType maps a declared content type onto the stored media
// type enum. GIFs are matched before the generic image prefix so they
// keep their own type.
func ClassifyMediaType(mimeType string) string {
	switch {
	case mimeType == "image/gif":
		return "gif"
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	default:
		return "other"
	}
}

// MediaStorage persists uploads below a public directory. Post media
// gets collision-resistant UUID filenames; avatars are keyed by user id
// so a new upload replaces the previous one.
type MediaStorage struct {
	PublicDir string
}

func NewMediaStorage(publicDir string) (*MediaStorage, error) {
	for _, dir := range []string{"uploads", filepath.Join("uploads", "thumbnails"), "avatars"} {
		if err := os.MkdirAll(filepath.Join(publicDir, dir), 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %v", dir, err)
		}
	}
	return &MediaStorage{PublicDir: publicDir}, nil
}

// SavedMedia describes a stored post upload.
type SavedMedia struct {
	URL      string
	MimeType string
	Size     int64
}

// SavePostMedia stores any file type up to MaxUploadSize under a fresh
// UUID filename and returns its public URL.
func (m *MediaStorage) SavePostMedia(file *multipart.FileHeader) (*SavedMedia, error) {
	if file.Size > MaxUploadSize {
		return nil, fmt.Errorf("file too large, maximum size is %d bytes", int64(MaxUploadSize))
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	fullPath := filepath.Join(m.PublicDir, "uploads", filename)

	dst, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return &SavedMedia{
		URL:      uploadsURLPrefix + "/" + filename,
		MimeType: mimeType,
		Size:     file.Size,
	}, nil
}

// SaveAvatar stores an avatar image for userID, downscaling wide images
// to avatarMaxWidth. Formats imaging cannot decode (such as SVG) are
// stored as uploaded.
func (m *MediaStorage) SaveAvatar(file *multipart.FileHeader, userID string) (string, error) {
	if file.Size > MaxAvatarSize {
		return "", fmt.Errorf("avatar too large, maximum size is %d bytes", int64(MaxAvatarSize))
	}
	mimeType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("only image files are allowed")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	filename := "avatar-" + userID + ext
	fullPath := filepath.Join(m.PublicDir, "avatars", filename)

	if img, err := imaging.Decode(bytes.NewReader(data)); err == nil {
		if img.Bounds().Dx() > avatarMaxWidth {
			img = imaging.Resize(img, avatarMaxWidth, 0, imaging.Lanczos)
		}
		if err := imaging.Save(img, fullPath); err != nil {
			return "", fmt.Errorf("failed to save avatar: %v", err)
		}
	} else {
		if err := os.WriteFile(fullPath, data, 0644); err != nil {
			return "", fmt.Errorf("failed to save avatar: %v", err)
		}
	}

	return avatarsURLPrefix + "/" + filename, nil
}

// GenerateVideoThumbnail extracts a poster frame from an uploaded video
// and saves it as a JPEG under uploads/thumbnails. Callers treat errors
// as non-fatal; a post without a thumbnail still renders.
func (m *MediaStorage) GenerateVideoThumbnail(mediaURL string) (string, error) {
	videoPath := m.pathForURL(mediaURL)
	if videoPath == "" {
		return "", fmt.Errorf("unrecognized media URL: %s", mediaURL)
	}

	tempPath := filepath.Join(os.TempDir(), uuid.NewString()+".jpg")
	defer os.Remove(tempPath)

	err := ffmpeg.Input(videoPath).
		Output(tempPath, ffmpeg.KwArgs{"vframes": 1, "ss": "00:00:01"}).
		OverWriteOutput().
		Run()
	if err != nil {
		return "", fmt.Errorf("failed to extract frame: %v", err)
	}

	img, err := imaging.Open(tempPath)
	if err != nil {
		return "", fmt.Errorf("failed to decode frame: %v", err)
	}
	resized := imaging.Resize(img, 320, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %v", err)
	}

	filename := filepath.Join("thumbnails", uuid.NewString()+".jpg")
	if err := os.WriteFile(filepath.Join(m.PublicDir, "uploads", filename), buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %v", err)
	}
	return uploadsURLPrefix + "/" + filepath.ToSlash(filename), nil
}

// RemoveByURL deletes the stored file behind a public URL. Missing
// files are ignored.
func (m *MediaStorage) RemoveByURL(url string) error {
	path := m.pathForURL(url)
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (m *MediaStorage) pathForURL(url string) string {
	switch {
	case strings.HasPrefix(url, uploadsURLPrefix+"/"):
		return filepath.Join(m.PublicDir, "uploads", filepath.FromSlash(strings.TrimPrefix(url, uploadsURLPrefix+"/")))
	case strings.HasPrefix(url, avatarsURLPrefix+"/"):
		return filepath.Join(m.PublicDir, "avatars", filepath.FromSlash(strings.TrimPrefix(url, avatarsURLPrefix+"/")))
	default:
		return ""
	}
}
