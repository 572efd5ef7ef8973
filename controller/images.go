package controller

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"gingallery/database"
	"gingallery/models"
	"gingallery/response"
	"gingallery/storage"
	"gingallery/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const suffixLength = 8

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// ListImages returns the stored filenames, optionally filtered by a
// clusterId sent in the request body.
func (ct *Controller) ListImages(c *gin.Context) {
	var filterBody struct {
		ClusterID string `json:"clusterId"`
	}
	// The body is optional; a missing or unreadable one means no filter.
	_ = c.ShouldBindJSON(&filterBody)

	filter := bson.M{}
	if filterBody.ClusterID != "" {
		filter["clusterId"] = filterBody.ClusterID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetProjection(bson.D{{Key: "image", Value: 1}})
	cursor, err := ct.collection(database.ImagesCollection).Find(ctx, filter, findOptions)
	if err != nil {
		response.InternalServerError(c, "controller.ListImages", err)
		return
	}
	defer cursor.Close(ctx)

	var docs []models.Image
	if err := cursor.All(ctx, &docs); err != nil {
		response.InternalServerError(c, "controller.ListImages", err)
		return
	}

	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		names = append(names, doc.Image)
	}
	c.JSON(http.StatusOK, names)
}

// UploadImages ingests a multipart batch into the cluster already vetted
// by the ValidateClusterID middleware. The whole batch is validated before
// the first byte is written, so a rejected file never leaves partial
// state. Blob writes that precede a failed metadata insert are not rolled
// back.
func (ct *Controller) UploadImages(c *gin.Context) {
	clusterID := c.Param("clusterid")

	form, err := c.MultipartForm()
	if err != nil {
		response.InvalidData(c, "controller.UploadImages", "Invalid multipart form")
		return
	}
	// Files are accepted from any multipart field, not just "images".
	var files []*multipart.FileHeader
	for _, headers := range form.File {
		files = append(files, headers...)
	}
	if len(files) == 0 {
		response.InvalidData(c, "controller.UploadImages", "No image file provided")
		return
	}

	// Validation pass: the whole batch is accepted or none of it is.
	for _, file := range files {
		contentType := file.Header.Get("Content-Type")
		if !allowedTypes[contentType] {
			response.InvalidData(c, "controller.UploadImages", "Wrong filetype, only jpg/png are accepted")
			return
		}
		if file.Size > ct.cfg.MaxUploadBytes {
			response.InvalidData(c, "controller.UploadImages",
				fmt.Sprintf("File %s exceeds the size limit", file.Filename))
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	docs := make([]models.Image, 0, len(files))
	for _, file := range files {
		stored, stem, ext, err := ct.resolveStorageName(ctx, file.Filename)
		if err != nil {
			response.InternalServerError(c, "controller.UploadImages", err)
			return
		}

		src, err := file.Open()
		if err != nil {
			response.InternalServerError(c, "controller.UploadImages", err)
			return
		}
		err = ct.store.Write(ctx, stored, src, file.Size, file.Header.Get("Content-Type"))
		src.Close()
		if err != nil {
			response.InternalServerError(c, "controller.UploadImages", err)
			return
		}

		docs = append(docs, models.Image{
			ID:        bson.NewObjectID(),
			Image:     stored,
			ImageName: stem,
			Extension: ext,
			ClusterID: clusterID,
		})
	}

	if _, err := ct.collection(database.ImagesCollection).InsertMany(ctx, docs); err != nil {
		response.InternalServerError(c, "controller.UploadImages", err)
		return
	}

	c.IndentedJSON(http.StatusCreated, gin.H{
		"message": "Images uploaded successfully",
		"images":  docs,
	})
}

// resolveStorageName keeps the original filename when it is free and
// otherwise inserts a random alphanumeric suffix between stem and
// extension. The suffix is generated once, without a re-check loop; the
// unique index on the images collection catches the residual collision.
func (ct *Controller) resolveStorageName(ctx context.Context, original string) (stored, stem, ext string, err error) {
	base := filepath.Base(original)
	ext = filepath.Ext(base)
	stem = strings.TrimSuffix(base, ext)

	exists, err := ct.store.Exists(ctx, base)
	if err != nil {
		return "", "", "", err
	}
	if !exists {
		return base, stem, ext, nil
	}

	suffix, err := utils.RandomString(suffixLength)
	if err != nil {
		return "", "", "", err
	}
	return fmt.Sprintf("%s-%s%s", stem, suffix, ext), stem, ext, nil
}

// ServeStatic streams raw stored bytes, with the Content-Type derived from
// the file extension.
func (ct *Controller) ServeStatic(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")
	if name == "" {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "File not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data, err := ct.store.Read(ctx, name)
	if err == storage.ErrNotFound {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "File not found"})
		return
	}
	if err != nil {
		response.InternalServerError(c, "controller.ServeStatic", err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}
