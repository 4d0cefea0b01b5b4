package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a document in the `products` collection. OwnerEmail links a
// listing to the seller who created it; it is empty for legacy records
// that were added before ownership was tracked.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
	OwnerEmail  string             `bson:"user_email,omitempty" json:"user_email,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// ProductUpdate holds the mutable fields applied by an edit. The image is
// a plain reference here because edits do not re-upload the file.
type ProductUpdate struct {
	Title       string  `bson:"title" json:"title"`
	Price       float64 `bson:"price" json:"price"`
	Image       string  `bson:"image" json:"image"`
	Description string  `bson:"description" json:"description"`
}
