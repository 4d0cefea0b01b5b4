package handler

import (
	"context"

	"github.com/iliyamo/online-market/internal/model"
)

// UserStore is the identity store contract consumed by handlers. It is
// implemented by repository.UserRepo; tests substitute in-memory fakes.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, u *model.User, password string, cost int) error
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	SetApproved(ctx context.Context, id string) error
	UpdateProfile(ctx context.Context, email string, p model.Profile) error
	DeleteCascade(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]model.User, error)
	ListPendingSellers(ctx context.Context) ([]model.User, error)
}

// ProductStore is the catalog store contract consumed by handlers,
// implemented by repository.ProductRepo.
type ProductStore interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	ListByOwner(ctx context.Context, email string) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, id string, upd model.ProductUpdate) error
	Delete(ctx context.Context, id string) error
}
