package cloudinary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-booking-service/pkg/logger"
)

func newTestClient(t *testing.T, uploadPrefix string) *Client {
	t.Helper()
	c, err := NewClient(uploadPrefix, Credentials{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
		Folder:    "avatars",
	}, 5*time.Second, logger.NewNop())
	require.NoError(t, err)
	return c
}

func TestUploadImage_Success(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/demo/")
		assert.True(t, strings.HasSuffix(r.URL.Path, "/upload"), "path=%s", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "key", r.FormValue("api_key"))
		assert.Equal(t, "avatar_u1", r.FormValue("public_id"))
		assert.Equal(t, "avatars", r.FormValue("folder"))
		assert.NotEmpty(t, r.FormValue("signature"))
		assert.NotEmpty(t, r.FormValue("timestamp"))

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, png, body)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"public_id":"avatars/avatar_u1","secure_url":"https://res.cloudinary.com/demo/avatars/avatar_u1.png","bytes":4}`)
	}))
	defer server.Close()

	res, err := newTestClient(t, server.URL).UploadImage(context.Background(), png, "image/png", "avatar_u1")

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/avatars/avatar_u1.png", res.URL)
	assert.Equal(t, "avatars/avatar_u1", res.PublicID)
	assert.Equal(t, int64(4), res.Bytes)
}

func TestUploadImage_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{"bad signature", http.StatusUnauthorized, `{"error":{"message":"Invalid Signature 1234. String to sign - 'public_id=avatar_u1'."}}`, ErrUnauthorized},
		{"unknown key", http.StatusUnauthorized, `{"error":{"message":"Unknown API key key"}}`, ErrUnauthorized},
		{"bad image", http.StatusBadRequest, `{"error":{"message":"Invalid image file"}}`, ErrInvalidResponse},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, ErrInvalidResponse},
		{"no url", http.StatusOK, `{"public_id":"avatars/avatar_u1"}`, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			_, err := newTestClient(t, server.URL).UploadImage(context.Background(), []byte("img"), "image/jpeg", "avatar_u1")
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestUploadImage_InvalidRequest(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1")

	_, err := c.UploadImage(context.Background(), nil, "image/jpeg", "avatar_u1")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = c.UploadImage(context.Background(), []byte("%PDF"), "application/pdf", "avatar_u1")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = c.UploadImage(context.Background(), []byte("img"), "image/jpeg", "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, isUnauthorized("Invalid Signature abc"))
	assert.True(t, isUnauthorized("api_secret mismatch"))
	assert.False(t, isUnauthorized("Invalid image file"))
}
