package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID       bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username string        `json:"username" bson:"username"`
	Password string        `json:"-" bson:"password"`
}

// Credentials is the register/login payload. Length bounds mirror the
// registration rules; the mixed-case password rule is checked separately
// so the error message can name it.
type Credentials struct {
	Username string `json:"username" form:"username" validate:"required,min=4,max=12"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=32"`
}
