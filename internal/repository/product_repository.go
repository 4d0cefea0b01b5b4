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
)

// ProductRepo is the catalog store over the `products` collection. Every
// operation is a direct pass-through to the document store; validation
// such as price parsing happens at the handler boundary.
type ProductRepo struct {
	products *mongo.Collection
}

func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{products: db.Collection("products")}
}

// ListAll returns the full catalog, newest first.
func (r *ProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	return r.list(ctx, bson.M{})
}

// ListByOwner returns the products created by the given seller email.
func (r *ProductRepo) ListByOwner(ctx context.Context, email string) ([]model.Product, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.list(ctx, bson.M{"user_email": email})
}

// FindByID fetches one product by its hex object id. A malformed id
// counts as not found.
func (r *ProductRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	var p model.Product
	err = r.products.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a product and fills in its generated id.
func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := r.products.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// Update applies the mutable fields to an existing product.
func (r *ProductRepo) Update(ctx context.Context, id string, upd model.ProductUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProductNotFound
	}
	res, err := r.products.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"title":       upd.Title,
		"price":       upd.Price,
		"image":       upd.Image,
		"description": upd.Description,
		"updated_at":  time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete removes one product by id.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProductNotFound
	}
	res, err := r.products.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepo) list(ctx context.Context, filter bson.M) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	products := []model.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
