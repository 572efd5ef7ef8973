package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gingallery/database"
	"gingallery/models"
	"gingallery/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// CreateCluster is the last stage of the chain
// CheckClusterNameFree -> CheckClusterURIFree -> here, so both keys were
// free moments ago. The unique indexes catch the concurrent case.
func (ct *Controller) CreateCluster(c *gin.Context) {
	var payload models.NewCluster
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil {
		response.InvalidData(c, "controller.CreateCluster", "Invalid request body")
		return
	}
	if payload.ClusterName == "" || payload.ClusterURI == "" {
		response.InvalidData(c, "controller.CreateCluster", "Cluster name and URI are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cluster := models.Cluster{
		ID:             bson.NewObjectID(),
		ClusterName:    payload.ClusterName,
		ClusterURI:     payload.ClusterURI,
		TimestampStart: payload.TimestampStart,
		TimestampEnd:   payload.TimestampEnd,
	}

	if _, err := ct.collection(database.ClustersCollection).InsertOne(ctx, cluster); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			response.InvalidData(c, "controller.CreateCluster", "Cluster name or URI already exists")
			return
		}
		response.InternalServerError(c, "controller.CreateCluster", err)
		return
	}

	c.IndentedJSON(http.StatusCreated, gin.H{
		"message": "Cluster created successfully",
		"cluster": cluster,
	})
}

func (ct *Controller) ListClusters(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := ct.collection(database.ClustersCollection).Find(ctx, bson.M{})
	if err != nil {
		response.InternalServerError(c, "controller.ListClusters", err)
		return
	}
	defer cursor.Close(ctx)

	clusters := []models.Cluster{}
	if err := cursor.All(ctx, &clusters); err != nil {
		response.InternalServerError(c, "controller.ListClusters", err)
		return
	}

	c.JSON(http.StatusOK, clusters)
}

func (ct *Controller) GetClusterByURI(c *gin.Context) {
	uri := c.Param("clusteruri")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cluster := &models.Cluster{}
	err := ct.collection(database.ClustersCollection).
		FindOne(ctx, bson.M{"clusterURI": uri}).Decode(cluster)
	if errors.Is(err, mongo.ErrNoDocuments) {
		response.InvalidData(c, "controller.GetClusterByURI", "Cluster not found")
		return
	}
	if err != nil {
		response.InternalServerError(c, "controller.GetClusterByURI", err)
		return
	}

	c.JSON(http.StatusOK, cluster)
}
