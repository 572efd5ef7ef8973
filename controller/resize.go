package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"gingallery/imgproc"
	"gingallery/response"

	"github.com/gin-gonic/gin"
)

// ResizeImage serves a JPEG variant of a stored image scaled to the
// requested height, width chosen to preserve the aspect ratio. The size
// parameter is checked before the blob is even read; nothing is decoded
// for a bad request. Every call recomputes the variant.
func (ct *Controller) ResizeImage(c *gin.Context) {
	height, err := strconv.Atoi(c.Param("size"))
	if err != nil || height <= 0 {
		response.InvalidData(c, "controller.ResizeImage", "Size should be a positive integer")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	src, err := ct.store.Read(ctx, c.Param("image"))
	if err != nil {
		response.InternalServerError(c, "controller.ResizeImage", err)
		return
	}

	resized, err := imgproc.ResizeToHeight(src, height)
	if err != nil {
		response.InternalServerError(c, "controller.ResizeImage", err)
		return
	}

	c.Data(http.StatusOK, "image/jpeg", resized)
}
