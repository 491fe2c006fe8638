package db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Photo struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL           string             `bson:"url" json:"url"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Hint          string             `bson:"hint,omitempty" json:"hint,omitempty"`
	IsSliderPhoto bool               `bson:"isSliderPhoto" json:"isSliderPhoto"`
	UploadedAt    time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
