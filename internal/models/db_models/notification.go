package db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is broadcast to everyone; there is no per-user read state.
type Notification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Link        string             `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
