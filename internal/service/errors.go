// Package service contains the business logic of the API. Read paths
// delegate to the cache engine; mutation paths write to MongoDB and then
// invalidate and repopulate the cache.
package service

import "errors"

var (
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrNameTaken is returned when a unique name already exists.
	ErrNameTaken = errors.New("name is already taken")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokenBlacklisted is returned when a token has been revoked.
	ErrTokenBlacklisted = errors.New("token is blacklisted")
	// ErrUnknownReference is returned when a request references a document
	// that does not exist, e.g. an order line for a missing product.
	ErrUnknownReference = errors.New("referenced document does not exist")
	// ErrInsufficientStock is returned when an order line asks for more
	// units than the product has left.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrForbidden is returned when an account acts on a document it does
	// not own.
	ErrForbidden = errors.New("operation not permitted for this account")
)
