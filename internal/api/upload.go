package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/pageza/foodies/backend/internal/apperrors"
	"github.com/pageza/foodies/backend/internal/service"
)

// MaxUploadSize is the largest accepted image
const MaxUploadSize = 5 << 20

const (
	msgFileTooLarge = "File too large"
	msgNotAnImage   = "Only image files are allowed"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// BodySizeLimiter caps the request body, leaving room for multipart framing
func BodySizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			_ = c.Error(apperrors.BadRequest(msgFileTooLarge))
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// readImage loads the optional image in field. A missing file returns nil
// without error. The content type is sniffed from the bytes.
func readImage(c *gin.Context, field string) (*service.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return nil, nil
		case errors.As(err, &maxErr):
			return nil, apperrors.BadRequest(msgFileTooLarge)
		}
		return nil, apperrors.BadRequest("Invalid multipart form")
	}
	if fh.Size > MaxUploadSize {
		return nil, apperrors.BadRequest(msgFileTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxUploadSize {
		return nil, apperrors.BadRequest(msgFileTooLarge)
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedImageTypes...) {
		return nil, apperrors.BadRequest(msgNotAnImage)
	}
	return &service.Upload{Data: data, ContentType: mt.String()}, nil
}
