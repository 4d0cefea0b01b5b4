package handler

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/online-market/internal/model"
	"github.com/iliyamo/online-market/internal/repository"
	"github.com/iliyamo/online-market/internal/session"
	"github.com/iliyamo/online-market/internal/utils"
)

// fakeUserStore implements UserStore over in-memory maps with the same
// documented contract as repository.UserRepo.
type fakeUserStore struct {
	mu       sync.Mutex
	users    map[string]*model.User // keyed by hex id
	products *fakeProductStore      // cascade target, may be nil
}

func newFakeUserStore(products *fakeProductStore) *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}, products: products}
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User, password string, cost int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.ID = primitive.NewObjectID()
	cp := *u
	f.users[u.ID.Hex()] = &cp
	return nil
}

func (f *fakeUserStore) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := f.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.VerifyPassword(u.PasswordHash, password) {
		return nil, repository.ErrInvalidCredentials
	}
	return u, nil
}

func (f *fakeUserStore) SetApproved(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Approved = true
	return nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, email string, p model.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range f.users {
		if u.Email == email {
			u.Address, u.Phone, u.Bio = p.Address, p.Phone, p.Bio
			if p.Picture != "" {
				u.Picture = p.Picture
			}
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (f *fakeUserStore) DeleteCascade(ctx context.Context, id string) error {
	f.mu.Lock()
	u, ok := f.users[id]
	if !ok {
		f.mu.Unlock()
		return repository.ErrUserNotFound
	}
	role, email := u.Role, u.Email
	delete(f.users, id)
	f.mu.Unlock()

	if role == model.RoleSeller && f.products != nil {
		f.products.deleteByOwner(email)
	}
	return nil
}

func (f *fakeUserStore) ListAll(_ context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) ListPendingSellers(_ context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.User{}
	for _, u := range f.users {
		if u.Role == model.RoleSeller && !u.Approved {
			out = append(out, *u)
		}
	}
	return out, nil
}

// fakeProductStore implements ProductStore over an in-memory slice.
type fakeProductStore struct {
	mu       sync.Mutex
	products []model.Product
}

func newFakeProductStore() *fakeProductStore { return &fakeProductStore{} }

func (f *fakeProductStore) add(title string, price float64, owner string) model.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := model.Product{
		ID:         primitive.NewObjectID(),
		Title:      title,
		Price:      price,
		Image:      "/static/uploads/" + title + ".jpg",
		OwnerEmail: strings.ToLower(owner),
	}
	f.products = append(f.products, p)
	return p
}

func (f *fakeProductStore) deleteByOwner(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.products[:0]
	for _, p := range f.products {
		if p.OwnerEmail != email {
			kept = append(kept, p)
		}
	}
	f.products = kept
}

func (f *fakeProductStore) ListAll(_ context.Context) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Product{}, f.products...), nil
}

func (f *fakeProductStore) ListByOwner(_ context.Context, email string) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	out := []model.Product{}
	for _, p := range f.products {
		if p.OwnerEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id string) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID.Hex() == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (f *fakeProductStore) Create(_ context.Context, p *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductStore) Update(_ context.Context, id string, upd model.ProductUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID.Hex() == id {
			f.products[i].Title = upd.Title
			f.products[i].Price = upd.Price
			f.products[i].Image = upd.Image
			f.products[i].Description = upd.Description
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (f *fakeProductStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID.Hex() == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrProductNotFound
}

// fakeSessionStore implements session.Store over a map.
type fakeSessionStore struct {
	mu       sync.Mutex
	next     int
	sessions map[string]*model.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*model.Session{}}
}

func (f *fakeSessionStore) Create(_ context.Context, sess *model.Session) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	id := strings.Repeat("0", 31) + string(rune('a'+f.next%26))
	cp := *sess
	f.sessions[id] = &cp
	return id, nil
}

func (f *fakeSessionStore) Get(_ context.Context, id string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sess, ok := f.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	cp := *sess
	return &cp, nil
}

func (f *fakeSessionStore) Save(_ context.Context, id string, sess *model.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *sess
	f.sessions[id] = &cp
	return nil
}

func (f *fakeSessionStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}
