// Package model contains the persisted entities of the store.
package model

// Image references an object uploaded to the image bucket.
type Image struct {
	Key string `bson:"key" json:"key"`
	URL string `bson:"url" json:"url"`
}

// Document statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
