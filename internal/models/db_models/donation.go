package db_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation is either monetary (Amount set) or in-kind (Item set).
// A record with only Item contributes nothing to monetary totals.
type Donation struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title  string             `bson:"title" json:"title"`
	Amount *float64           `bson:"amount,omitempty" json:"amount,omitempty"`
	Item   string             `bson:"item,omitempty" json:"item,omitempty"`
	Date   string             `bson:"date" json:"date"`
}
