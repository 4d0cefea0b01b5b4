package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/online-market/internal/model"
	"github.com/iliyamo/online-market/internal/utils"
)

// UserRepo is the identity store over the `users` collection. It also
// holds the products collection so that deleting a seller can cascade
// to their listings in one place.
type UserRepo struct {
	users    *mongo.Collection
	products *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{
		users:    db.Collection("users"),
		products: db.Collection("products"),
	}
}

// EnsureIndexes creates the unique index on email. The duplicate check
// in Create is a pre-check and not atomic; the index is the backstop
// that makes concurrent duplicate signups fail at insert time.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// FindByEmail fetches a user by normalized email. Absence is a valid
// outcome and returns (nil, nil).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID fetches a user by its hex object id. A malformed id counts
// as not found.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	var u model.User
	err = r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create hashes the password and inserts the user. The email is
// lowercased first and checked for duplicates; a concurrent duplicate
// that slips past the pre-check is caught by the unique index.
func (r *UserRepo) Create(ctx context.Context, u *model.User, password string, cost int) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	existing, err := r.FindByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailExists
	}

	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := r.users.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

// Authenticate looks a user up by email and verifies the password
// against the stored bcrypt hash. Unknown email and wrong password are
// both reported as ErrInvalidCredentials.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.VerifyPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// SetApproved marks a seller as approved. The operation is idempotent;
// approving an already approved user changes nothing.
func (r *UserRepo) SetApproved(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}
	res, err := r.users.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"approved":   true,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateProfile applies the user-editable profile fields to the record
// addressed by email.
func (r *UserRepo) UpdateProfile(ctx context.Context, email string, p model.Profile) error {
	email = strings.ToLower(strings.TrimSpace(email))
	set := bson.M{
		"address":    p.Address,
		"phone":      p.Phone,
		"bio":        p.Bio,
		"updated_at": time.Now().UTC(),
	}
	if p.Picture != "" {
		set["picture"] = p.Picture
	}
	res, err := r.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteCascade removes a user and, when the user is a seller, every
// product owned by their email. Products go first so that a failure
// half-way never leaves listings without an owner record already gone.
func (r *UserRepo) DeleteCascade(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}
	var u model.User
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrUserNotFound
		}
		return err
	}
	if u.Role == model.RoleSeller {
		if _, err := r.products.DeleteMany(ctx, bson.M{"user_email": u.Email}); err != nil {
			return err
		}
	}
	_, err = r.users.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// ListAll returns every user, newest first. Used by the admin panel.
func (r *UserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	return r.list(ctx, bson.M{})
}

// ListPendingSellers returns sellers that have not been approved yet.
func (r *UserRepo) ListPendingSellers(ctx context.Context) ([]model.User, error) {
	return r.list(ctx, bson.M{"role": model.RoleSeller, "approved": false})
}

func (r *UserRepo) list(ctx context.Context, filter bson.M) ([]model.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.users.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
