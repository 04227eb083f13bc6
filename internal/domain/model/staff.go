package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Staff roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleStaff  = "staff"
)

// Staff is a back-office account. The password hash is kept out of JSON,
// and Public additionally clears it before the document is cached.
type Staff struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	Gender    string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Image     Image              `bson:"image,omitempty" json:"image,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Public returns the projection safe to cache and expose.
func (s Staff) Public() Staff {
	s.Password = ""
	return s
}
