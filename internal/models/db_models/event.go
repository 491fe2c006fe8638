package db_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Date         string             `bson:"date" json:"date"` // YYYY-MM-DD
	PhotoURL     string             `bson:"photoUrl" json:"photoUrl"`
	Hint         string             `bson:"hint,omitempty" json:"hint,omitempty"`
	RedirectURL  string             `bson:"redirectUrl,omitempty" json:"redirectUrl,omitempty"`
	ShowOnSlider bool               `bson:"showOnSlider" json:"showOnSlider"`
}
