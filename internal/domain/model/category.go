package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products. The slug is derived from the name at creation
// time and kept unique alongside it.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Image       Image              `bson:"image" json:"image"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
