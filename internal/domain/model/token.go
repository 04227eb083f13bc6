package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Token types.
const (
	TokenRefresh   = "refresh"
	TokenBlacklist = "blacklist"
	TokenReset     = "reset"
	TokenVerify    = "verify_email"
)

// Account subjects a token can belong to.
const (
	SubjectStaff = "staff"
	SubjectUser  = "user"
)

// Token is a stored refresh token or a blacklisted access token. A TTL
// index on expires_at removes stale rows automatically.
type Token struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID primitive.ObjectID `bson:"account_id" json:"account_id"`
	Subject   string             `bson:"subject" json:"subject"`
	Token     string             `bson:"token" json:"token"`
	Type      string             `bson:"type" json:"type"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
