package middlewares

import (
	"context"
	"time"

	"gingallery/database"
	"gingallery/models"
	"gingallery/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Each validator here is one stage of a route's ordered chain. A stage
// either aborts with its own response or calls the next one; gin's Abort
// guarantees nothing after a terminating stage runs. Body-reading stages
// use ShouldBindBodyWith so later stages can bind the same body again.

const queryTimeout = 10 * time.Second

// CheckUserFree rejects registration when the username is already taken.
// An unreadable or empty username is passed through for the validation
// stage to report.
func CheckUserFree(users database.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds models.Credentials
		if err := c.ShouldBindBodyWith(&creds, binding.JSON); err != nil || creds.Username == "" {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		count, err := users.CountDocuments(ctx, bson.M{"username": creds.Username})
		if err != nil {
			response.InternalServerError(c, "middlewares.CheckUserFree", err)
			return
		}
		if count > 0 {
			response.InvalidData(c, "middlewares.CheckUserFree", "User Exists")
			return
		}
		c.Next()
	}
}

// CheckClusterNameFree is the first cluster-creation check; it names the
// collided field so the client knows which one to change.
func CheckClusterNameFree(clusters database.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cluster models.NewCluster
		if err := c.ShouldBindBodyWith(&cluster, binding.JSON); err != nil {
			response.InvalidData(c, "middlewares.CheckClusterNameFree", "Invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		count, err := clusters.CountDocuments(ctx, bson.M{"clusterName": cluster.ClusterName})
		if err != nil {
			response.InternalServerError(c, "middlewares.CheckClusterNameFree", err)
			return
		}
		if count > 0 {
			response.InvalidData(c, "middlewares.CheckClusterNameFree", "Cluster name already exists")
			return
		}
		c.Next()
	}
}

// CheckClusterURIFree runs after the name check.
func CheckClusterURIFree(clusters database.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cluster models.NewCluster
		if err := c.ShouldBindBodyWith(&cluster, binding.JSON); err != nil {
			response.InvalidData(c, "middlewares.CheckClusterURIFree", "Invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		count, err := clusters.CountDocuments(ctx, bson.M{"clusterURI": cluster.ClusterURI})
		if err != nil {
			response.InternalServerError(c, "middlewares.CheckClusterURIFree", err)
			return
		}
		if count > 0 {
			response.InvalidData(c, "middlewares.CheckClusterURIFree", "Cluster URI already exists")
			return
		}
		c.Next()
	}
}

// ValidateClusterID gates uploads. A malformed id never reaches the
// database, and a well-formed but unknown id yields the same message, so
// the two cases are indistinguishable to the caller.
func ValidateClusterID(clusters database.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("clusterid")

		oid, err := bson.ObjectIDFromHex(id)
		if err != nil {
			response.InvalidData(c, "middlewares.ValidateClusterID", "Invalid cluster id")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		count, err := clusters.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			response.InternalServerError(c, "middlewares.ValidateClusterID", err)
			return
		}
		if count == 0 {
			response.InvalidData(c, "middlewares.ValidateClusterID", "Invalid cluster id")
			return
		}
		c.Next()
	}
}
