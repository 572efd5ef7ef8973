package controller

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStorageNameFree(t *testing.T) {
	ctrl := newTestController(t)

	stored, stem, ext, err := ctrl.resolveStorageName(context.Background(), "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", stored)
	assert.Equal(t, "a", stem)
	assert.Equal(t, ".jpg", ext)
}

func TestResolveStorageNameCollision(t *testing.T) {
	ctrl := newTestController(t)
	ctx := context.Background()
	require.NoError(t, ctrl.store.Write(ctx, "a.jpg", strings.NewReader("old"), 3, "image/jpeg"))

	stored, stem, ext, err := ctrl.resolveStorageName(ctx, "a.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, "a.jpg", stored)
	assert.Equal(t, "a", stem)
	assert.Equal(t, ".jpg", ext)
	assert.Regexp(t, regexp.MustCompile(`^a-[a-zA-Z0-9]{8}\.jpg$`), stored)

	// Storing under the resolved name must leave the old file intact.
	require.NoError(t, ctrl.store.Write(ctx, stored, strings.NewReader("new"), 3, "image/jpeg"))
	old, err := ctrl.store.Read(ctx, "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), old)
	fresh, err := ctrl.store.Read(ctx, stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), fresh)
}

func TestResolveStorageNameStripsDirectories(t *testing.T) {
	ctrl := newTestController(t)

	stored, stem, ext, err := ctrl.resolveStorageName(context.Background(), "some/dir/b.png")
	require.NoError(t, err)
	assert.Equal(t, "b.png", stored)
	assert.Equal(t, "b", stem)
	assert.Equal(t, ".png", ext)
}

func staticRouter(ctrl *Controller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/static/images/*filepath", ctrl.ServeStatic)
	return router
}

func TestServeStatic(t *testing.T) {
	ctrl := newTestController(t)
	content := []byte("png bytes")
	require.NoError(t, ctrl.store.Write(context.Background(), "pic.png",
		bytes.NewReader(content), int64(len(content)), "image/png"))
	router := staticRouter(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/static/images/pic.png", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, content, w.Body.Bytes())
}

func TestServeStaticMissing(t *testing.T) {
	ctrl := newTestController(t)
	router := staticRouter(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/static/images/nope.png", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
