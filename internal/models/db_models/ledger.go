package db_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionEntry is money collected from members (dues, fees).
type CollectionEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title  string             `bson:"title" json:"title"`
	Amount float64            `bson:"amount" json:"amount"`
	Date   string             `bson:"date" json:"date"`
}

type Expense struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title  string             `bson:"title" json:"title"`
	Amount float64            `bson:"amount" json:"amount"`
	Date   string             `bson:"date" json:"date"`
}
