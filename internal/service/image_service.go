package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"talento/internal/config"
	"talento/internal/models"
)

const (
	DefaultImageUploadDir       = "/tmp/talento/uploads/images"
	DefaultImageMaxUploadSizeMB = 10
	ProfileMaxSize              = 1024
	JPEGQuality                 = 82
	WebPQuality                 = 70
)

// UploadImageInput carries a raw profile image upload.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ImageService processes profile image uploads: validates, normalizes to a
// bounded size, and stores JPEG plus WebP renditions on disk.
type ImageService struct {
	uploadDir          string
	maxUploadSizeBytes int64
}

func NewImageService(cfg *config.Config) *ImageService {
	uploadDir := DefaultImageUploadDir
	maxUploadSizeMB := DefaultImageMaxUploadSizeMB

	if cfg != nil {
		if cfg.ImageUploadDir != "" {
			uploadDir = cfg.ImageUploadDir
		}
		if cfg.ImageMaxUploadSizeMB > 0 {
			maxUploadSizeMB = cfg.ImageMaxUploadSizeMB
		}
	}

	return &ImageService{
		uploadDir:          uploadDir,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// UploadDir returns the directory renditions are written under, for static
// serving.
func (s *ImageService) UploadDir() string {
	return s.uploadDir
}

// SaveProfileImage validates and stores an uploaded image, returning the
// public reference path for the JPEG rendition.
func (s *ImageService) SaveProfileImage(in UploadImageInput) (string, error) {
	if len(in.Content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if int64(len(in.Content)) > s.maxUploadSizeBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	detectedType := http.DetectContentType(in.Content)
	if !isAllowedImageMIME(detectedType) {
		return "", models.NewValidationError("Invalid image type")
	}

	decoded, format, err := image.Decode(bytes.NewReader(in.Content))
	if err != nil {
		return "", models.NewValidationError("Invalid image file")
	}
	if !isSupportedDecodedFormat(format) {
		return "", models.NewValidationError("Unsupported image format")
	}

	normalized := resizeToFit(decoded, ProfileMaxSize, ProfileMaxSize)

	jpegBytes, err := encodeJPEG(normalized, JPEGQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	webpBytes, err := encodeWebP(normalized, WebPQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	id := uuid.NewString()
	jpegRel := filepath.ToSlash(filepath.Join(id, "profile.jpg"))
	webpRel := filepath.ToSlash(filepath.Join(id, "profile.webp"))
	jpegAbs := filepath.Join(s.uploadDir, jpegRel)
	webpAbs := filepath.Join(s.uploadDir, webpRel)

	if err := writeBytesToFile(jpegAbs, jpegBytes); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := writeBytesToFile(webpAbs, webpBytes); err != nil {
		_ = os.Remove(jpegAbs)
		return "", models.NewInternalError(err)
	}

	return "/media/" + jpegRel, nil
}

func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isAllowedImageMIME(contentType string) bool {
	switch normalizeContentType(contentType) {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

func normalizeContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func isSupportedDecodedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "jpeg", "jpg", "png", "gif", "webp":
		return true
	default:
		return false
	}
}

func writeBytesToFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
