package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values stored in the users collection. Buyers and admins are
// approved implicitly; sellers start unapproved and must be approved
// by an admin before they can list products.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User is a document in the `users` collection. The password is stored
// only as a bcrypt hash and is never serialized into JSON responses.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName    string             `bson:"firstName" json:"firstName"`
	LastName     string             `bson:"lastName" json:"lastName"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Approved     bool               `bson:"approved" json:"approved"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Picture      string             `bson:"picture,omitempty" json:"picture,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// Profile carries the user-editable profile fields. Names and email are
// fixed at signup and are not part of a profile update.
type Profile struct {
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Bio     string `bson:"bio,omitempty" json:"bio,omitempty"`
	Picture string `bson:"picture,omitempty" json:"picture,omitempty"`
}
