package db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AdminRequestPending  = "pending"
	AdminRequestApproved = "approved"
	AdminRequestRejected = "rejected"
)

// AdminRequest is a plain status field, not a guarded state machine:
// any status can be overwritten with any other by an admin.
type AdminRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	PhotoURL    string             `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Reason      string             `bson:"reason" json:"reason"`
	Status      string             `bson:"status" json:"status"`
	RequestedAt time.Time          `bson:"requestedAt" json:"requestedAt"`
}

func IsValidAdminRequestStatus(status string) bool {
	switch status {
	case AdminRequestPending, AdminRequestApproved, AdminRequestRejected:
		return true
	}
	return false
}
