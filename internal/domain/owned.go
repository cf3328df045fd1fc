package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owned carries the fields shared by every user-ownable resource
// (Exercise, Workout, Program). A nil UserID marks a default resource:
// system-seeded, implicitly public, and never mutable through the API.
type Owned struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    *primitive.ObjectID `bson:"userId" json:"userId"`
	IsPrivate bool                `bson:"isPrivate" json:"isPrivate"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time          `bson:"deletedAt,omitempty" json:"-"`
}

// Meta exposes the shared ownership fields to the generic repository.
func (o *Owned) Meta() *Owned { return o }

// IsDefault reports whether the resource is system-owned.
func (o *Owned) IsDefault() bool { return o.UserID == nil }

// OwnedBy reports whether the resource belongs to the given user.
func (o *Owned) OwnedBy(userID primitive.ObjectID) bool {
	return o.UserID != nil && *o.UserID == userID
}
