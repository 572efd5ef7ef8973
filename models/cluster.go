package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Cluster is a named, URI-keyed grouping of images, for example a single
// trip or event. Both ClusterName and ClusterURI are unique.
type Cluster struct {
	ID             bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClusterName    string        `json:"clusterName" bson:"clusterName"`
	ClusterURI     string        `json:"clusterURI" bson:"clusterURI"`
	TimestampStart int64         `json:"timestampStart" bson:"timestampStart"`
	TimestampEnd   int64         `json:"timestampEnd" bson:"timestampEnd"`
}

type NewCluster struct {
	ClusterName    string `json:"clusterName" form:"clusterName" validate:"required"`
	ClusterURI     string `json:"clusterURI" form:"clusterURI" validate:"required"`
	TimestampStart int64  `json:"timestampStart" form:"timestampStart"`
	TimestampEnd   int64  `json:"timestampEnd" form:"timestampEnd"`
}
