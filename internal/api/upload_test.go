package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBodySizeLimiter(t *testing.T) {
	r, _ := newTestRouter()
	r.POST("/upload", BodySizeLimiter(16), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(make([]byte, 8))))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(make([]byte, 32))))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "File too large", decodeMessage(t, w))
}

func TestReadImageAcceptedTypes(t *testing.T) {
	gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"png", pngBytes(t), "image/png"},
		{"gif", gif, "image/gif"},
		{"jpeg", jpeg, "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter()
			var got string
			r.POST("/upload", func(c *gin.Context) {
				img, err := readImage(c, "file")
				if err != nil {
					_ = c.Error(err)
					return
				}
				got = img.ContentType
				c.Status(http.StatusNoContent)
			})

			w := performMultipart(t, r, http.MethodPost, "/upload", nil, "file", tt.data)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}
