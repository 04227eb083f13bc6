package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a shipping address attached to a user account.
type Address struct {
	Country  string `bson:"country,omitempty" json:"country,omitempty"`
	City     string `bson:"city,omitempty" json:"city,omitempty"`
	Street   string `bson:"street,omitempty" json:"street,omitempty"`
	PostCode string `bson:"post_code,omitempty" json:"post_code,omitempty"`
}

// User is a customer account.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   Address            `bson:"address,omitempty" json:"address,omitempty"`
	Image     Image              `bson:"image,omitempty" json:"image,omitempty"`
	Status    string             `bson:"status" json:"status"`
	Verified  bool               `bson:"verified" json:"verified"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Public returns the projection safe to cache and expose.
func (u User) Public() User {
	u.Password = ""
	return u
}
