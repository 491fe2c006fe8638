package db_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Member struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	PhotoURL   string             `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	JoinDate   string             `bson:"joinDate" json:"joinDate"`
	DOB        string             `bson:"dob,omitempty" json:"dob,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	BloodGroup string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	IsAdmin    bool               `bson:"isAdmin" json:"isAdmin"`
}
