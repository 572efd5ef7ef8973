package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Image is one stored file. Image holds the resolved storage filename with
// extension and is the join key with the blob store, so it must match the
// stored object name exactly.
type Image struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Image     string        `json:"image" bson:"image"`
	ImageName string        `json:"imageName" bson:"imageName"`
	Extension string        `json:"extension" bson:"extension"`
	ClusterID string        `json:"clusterId" bson:"clusterId"`
}
