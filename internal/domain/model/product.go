package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a sellable item. Price is stored in the minor currency unit
// to keep arithmetic exact.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Price       int64              `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	Image       Image              `bson:"image" json:"image"`
	CategoryID  primitive.ObjectID `bson:"category_id" json:"category_id"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
